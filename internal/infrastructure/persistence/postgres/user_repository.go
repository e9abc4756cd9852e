package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	"github.com/dmirandam/backoffice-backend/internal/domain/repositories"
)

// UserRepository implementa repositories.UserRepository.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository crea un nuevo UserRepository.
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := userToModel(user)

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	user.ID = model.ID
	user.CreatedAt = time.Unix(model.CreatedAt, 0).UTC()
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	var model UserModel

	db := getDB(ctx, r.db)
	// Borrado lógico: ignorar registros borrados
	if err := db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userToEntity(&model), nil
}

func (r *UserRepository) FindByIDWithRole(ctx context.Context, id uint) (*entities.User, error) {
	var model UserModel

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Preload("Role").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userToEntity(&model), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model UserModel

	db := getDB(ctx, r.db)
	// Comparación sin distinguir mayúsculas; borrados excluidos
	if err := db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?) AND deleted_at IS NULL", email).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userToEntity(&model), nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := userToModel(user)

	db := getDB(ctx, r.db)
	return db.WithContext(ctx).Save(model).Error
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)
	// Borrado lógico: estampar deleted_at en lugar de borrar
	now := time.Now().UTC().Unix()
	return db.WithContext(ctx).
		Model(&UserModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}

func (r *UserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, int64, error) {
	var models []*UserModel

	db := getDB(ctx, r.db)
	query := db.WithContext(ctx).Model(&UserModel{}).Preload("Role")

	// Borrado lógico: ignorar registros borrados
	query = query.Where("deleted_at IS NULL")

	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where(
			"LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}

	query = applyUserSort(query, filters)

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

	offset := (page - 1) * pageSize
	if err := query.Limit(pageSize).Offset(offset).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*entities.User, 0, len(models))
	for _, model := range models {
		users = append(users, userToEntity(model))
	}
	return users, total, nil
}

func (r *UserRepository) CountByRole(ctx context.Context, roleID uint) (int64, error) {
	db := getDB(ctx, r.db)

	var count int64
	err := db.WithContext(ctx).
		Model(&UserModel{}).
		Where("role_id = ? AND deleted_at IS NULL", roleID).
		Count(&count).Error
	return count, err
}

func applyUserSort(query *gorm.DB, filters repositories.UserFilters) *gorm.DB {
	dir := "ASC"
	if filters.SortDesc {
		dir = "DESC"
	}

	switch filters.SortBy {
	case "firstname":
		return query.Order("first_name " + dir)
	case "lastname":
		return query.Order("last_name " + dir)
	case "email":
		return query.Order("email " + dir)
	case "createdat":
		return query.Order("created_at " + dir)
	default:
		return query.Order("id " + dir)
	}
}

// Conversores
func userToModel(user *entities.User) *UserModel {
	model := &UserModel{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		RoleID:       user.RoleID,
		Status:       string(user.Status),
		Avatar:       user.Avatar,
		UpdatedAt:    unixPtr(user.UpdatedAt),
		LastLoginAt:  unixPtr(user.LastLoginAt),
		DeletedAt:    unixPtr(user.DeletedAt),
	}
	if !user.CreatedAt.IsZero() {
		model.CreatedAt = user.CreatedAt.Unix()
	}
	return model
}

func userToEntity(model *UserModel) *entities.User {
	user := &entities.User{
		ID:           model.ID,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		RoleID:       model.RoleID,
		Status:       entities.UserStatus(model.Status),
		Avatar:       model.Avatar,
		CreatedAt:    time.Unix(model.CreatedAt, 0).UTC(),
		UpdatedAt:    timePtr(model.UpdatedAt),
		LastLoginAt:  timePtr(model.LastLoginAt),
		DeletedAt:    timePtr(model.DeletedAt),
	}
	if model.Role != nil {
		user.Role = roleToEntity(model.Role)
	}
	return user
}
