package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	"github.com/dmirandam/backoffice-backend/internal/domain/repositories"
)

// PermissionRepository implementa repositories.PermissionRepository.
type PermissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository crea un nuevo PermissionRepository.
func NewPermissionRepository(db *gorm.DB) repositories.PermissionRepository {
	return &PermissionRepository{db: db}
}

func (r *PermissionRepository) Create(ctx context.Context, permission *entities.UserPermission) error {
	model := permissionToModel(permission)

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	permission.ID = model.ID
	permission.CreatedAt = time.Unix(model.CreatedAt, 0).UTC()
	return nil
}

func (r *PermissionRepository) FindByID(ctx context.Context, id uint) (*entities.UserPermission, error) {
	var model UserPermissionModel

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Preload("Module").Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return permissionToEntity(&model), nil
}

func (r *PermissionRepository) FindByUserAndModule(ctx context.Context, userID, moduleID uint) (*entities.UserPermission, error) {
	var model UserPermissionModel

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("user_id = ? AND module_id = ?", userID, moduleID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return permissionToEntity(&model), nil
}

func (r *PermissionRepository) Update(ctx context.Context, permission *entities.UserPermission) error {
	model := permissionToModel(permission)

	db := getDB(ctx, r.db)
	return db.WithContext(ctx).Save(model).Error
}

func (r *PermissionRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)
	return db.WithContext(ctx).Delete(&UserPermissionModel{}, id).Error
}

func (r *PermissionRepository) DeleteByUserAndModule(ctx context.Context, userID, moduleID uint) error {
	db := getDB(ctx, r.db)
	return db.WithContext(ctx).
		Where("user_id = ? AND module_id = ?", userID, moduleID).
		Delete(&UserPermissionModel{}).Error
}

func (r *PermissionRepository) DeleteAllForUser(ctx context.Context, userID uint) (int64, error) {
	db := getDB(ctx, r.db)
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&UserPermissionModel{})
	return result.RowsAffected, result.Error
}

func (r *PermissionRepository) ListByUser(ctx context.Context, userID uint) ([]*entities.UserPermission, error) {
	var models []*UserPermissionModel

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Preload("Module").
		Joins("JOIN modules ON modules.id = user_permissions.module_id").
		Where("user_permissions.user_id = ?", userID).
		Order("modules.name ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	return permissionsToEntities(models), nil
}

func (r *PermissionRepository) ListByModule(ctx context.Context, moduleID uint) ([]*entities.UserPermission, error) {
	var models []*UserPermissionModel

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Preload("Module").
		Where("module_id = ?", moduleID).
		Order("user_id ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	return permissionsToEntities(models), nil
}

func (r *PermissionRepository) CountByModule(ctx context.Context, moduleID uint) (int64, error) {
	db := getDB(ctx, r.db)

	var count int64
	err := db.WithContext(ctx).
		Model(&UserPermissionModel{}).
		Where("module_id = ?", moduleID).
		Count(&count).Error
	return count, err
}

// Conversores
func permissionToModel(permission *entities.UserPermission) *UserPermissionModel {
	model := &UserPermissionModel{
		ID:             permission.ID,
		UserID:         permission.UserID,
		ModuleID:       permission.ModuleID,
		PermissionType: int(permission.PermissionType),
		UpdatedAt:      unixPtr(permission.UpdatedAt),
	}
	if !permission.CreatedAt.IsZero() {
		model.CreatedAt = permission.CreatedAt.Unix()
	}
	return model
}

func permissionToEntity(model *UserPermissionModel) *entities.UserPermission {
	permission := &entities.UserPermission{
		ID:             model.ID,
		UserID:         model.UserID,
		ModuleID:       model.ModuleID,
		PermissionType: entities.PermissionType(model.PermissionType),
		CreatedAt:      time.Unix(model.CreatedAt, 0).UTC(),
		UpdatedAt:      timePtr(model.UpdatedAt),
	}
	if model.Module != nil {
		permission.Module = moduleToEntity(model.Module)
	}
	return permission
}

func permissionsToEntities(models []*UserPermissionModel) []*entities.UserPermission {
	permissions := make([]*entities.UserPermission, 0, len(models))
	for _, model := range models {
		permissions = append(permissions, permissionToEntity(model))
	}
	return permissions
}
