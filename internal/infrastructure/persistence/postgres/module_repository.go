package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	"github.com/dmirandam/backoffice-backend/internal/domain/repositories"
)

// ModuleRepository implementa repositories.ModuleRepository.
type ModuleRepository struct {
	db *gorm.DB
}

// NewModuleRepository crea un nuevo ModuleRepository.
func NewModuleRepository(db *gorm.DB) repositories.ModuleRepository {
	return &ModuleRepository{db: db}
}

func (r *ModuleRepository) Create(ctx context.Context, module *entities.Module) error {
	model := moduleToModel(module)

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	module.ID = model.ID
	module.CreatedAt = time.Unix(model.CreatedAt, 0).UTC()
	return nil
}

func (r *ModuleRepository) FindByID(ctx context.Context, id uint) (*entities.Module, error) {
	var model ModuleModel

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return moduleToEntity(&model), nil
}

func (r *ModuleRepository) FindByCode(ctx context.Context, code string) (*entities.Module, error) {
	var model ModuleModel

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("code = ? AND deleted_at IS NULL", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return moduleToEntity(&model), nil
}

func (r *ModuleRepository) Update(ctx context.Context, module *entities.Module) error {
	model := moduleToModel(module)

	db := getDB(ctx, r.db)
	return db.WithContext(ctx).Save(model).Error
}

func (r *ModuleRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)
	now := time.Now().UTC().Unix()
	return db.WithContext(ctx).
		Model(&ModuleModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}

func (r *ModuleRepository) List(ctx context.Context, filters repositories.ModuleFilters) ([]*entities.Module, int64, error) {
	var models []*ModuleModel

	db := getDB(ctx, r.db)
	query := db.WithContext(ctx).Model(&ModuleModel{}).Where("deleted_at IS NULL")

	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(code) LIKE LOWER(?)", pattern, pattern)
	}
	if filters.OnlyActive {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = 50
	}
	if pageSize > 100 {
		pageSize = 100
	}

	if err := query.Order("sort_order ASC").Limit(pageSize).Offset((page - 1) * pageSize).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	modules := make([]*entities.Module, 0, len(models))
	for _, model := range models {
		modules = append(modules, moduleToEntity(model))
	}
	return modules, total, nil
}

// Conversores
func moduleToModel(module *entities.Module) *ModuleModel {
	model := &ModuleModel{
		ID:          module.ID,
		Name:        module.Name,
		Code:        module.Code,
		Description: module.Description,
		Path:        module.Path,
		Icon:        module.Icon,
		Order:       module.Order,
		IsActive:    module.IsActive,
		UpdatedAt:   unixPtr(module.UpdatedAt),
		DeletedAt:   unixPtr(module.DeletedAt),
	}
	if !module.CreatedAt.IsZero() {
		model.CreatedAt = module.CreatedAt.Unix()
	}
	return model
}

func moduleToEntity(model *ModuleModel) *entities.Module {
	return &entities.Module{
		ID:          model.ID,
		Name:        model.Name,
		Code:        model.Code,
		Description: model.Description,
		Path:        model.Path,
		Icon:        model.Icon,
		Order:       model.Order,
		IsActive:    model.IsActive,
		CreatedAt:   time.Unix(model.CreatedAt, 0).UTC(),
		UpdatedAt:   timePtr(model.UpdatedAt),
		DeletedAt:   timePtr(model.DeletedAt),
	}
}
