package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	"github.com/dmirandam/backoffice-backend/internal/domain/repositories"
)

// RoleRepository implementa repositories.RoleRepository.
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository crea un nuevo RoleRepository.
func NewRoleRepository(db *gorm.DB) repositories.RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) Create(ctx context.Context, role *entities.Role) error {
	model := roleToModel(role)

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	role.ID = model.ID
	role.CreatedAt = time.Unix(model.CreatedAt, 0).UTC()
	return nil
}

func (r *RoleRepository) FindByID(ctx context.Context, id uint) (*entities.Role, error) {
	var model RoleModel

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return roleToEntity(&model), nil
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*entities.Role, error) {
	var model RoleModel

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("name = ? AND deleted_at IS NULL", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return roleToEntity(&model), nil
}

func (r *RoleRepository) Update(ctx context.Context, role *entities.Role) error {
	model := roleToModel(role)

	db := getDB(ctx, r.db)
	return db.WithContext(ctx).Save(model).Error
}

func (r *RoleRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)
	now := time.Now().UTC().Unix()
	return db.WithContext(ctx).
		Model(&RoleModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}

func (r *RoleRepository) List(ctx context.Context, filters repositories.RoleFilters) ([]*entities.Role, int64, error) {
	var models []*RoleModel

	db := getDB(ctx, r.db)
	query := db.WithContext(ctx).Model(&RoleModel{}).Where("deleted_at IS NULL")

	if filters.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filters.Search+"%")
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
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}

	if err := query.Order("id ASC").Limit(pageSize).Offset((page - 1) * pageSize).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	roles := make([]*entities.Role, 0, len(models))
	for _, model := range models {
		roles = append(roles, roleToEntity(model))
	}
	return roles, total, nil
}

// Conversores
func roleToModel(role *entities.Role) *RoleModel {
	model := &RoleModel{
		ID:                   role.ID,
		Name:                 role.Name,
		Description:          role.Description,
		IsSystemRole:         role.IsSystemRole,
		GrantsAllPermissions: role.GrantsAllPermissions,
		UpdatedAt:            unixPtr(role.UpdatedAt),
		DeletedAt:            unixPtr(role.DeletedAt),
	}
	if !role.CreatedAt.IsZero() {
		model.CreatedAt = role.CreatedAt.Unix()
	}
	return model
}

func roleToEntity(model *RoleModel) *entities.Role {
	return &entities.Role{
		ID:                   model.ID,
		Name:                 model.Name,
		Description:          model.Description,
		IsSystemRole:         model.IsSystemRole,
		GrantsAllPermissions: model.GrantsAllPermissions,
		CreatedAt:            time.Unix(model.CreatedAt, 0).UTC(),
		UpdatedAt:            timePtr(model.UpdatedAt),
		DeletedAt:            timePtr(model.DeletedAt),
	}
}
