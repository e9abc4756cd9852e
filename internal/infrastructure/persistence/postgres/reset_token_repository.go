package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	"github.com/dmirandam/backoffice-backend/internal/domain/repositories"
)

// ResetTokenRepository implementa repositories.ResetTokenRepository.
type ResetTokenRepository struct {
	db *gorm.DB
}

// NewResetTokenRepository crea un nuevo ResetTokenRepository.
func NewResetTokenRepository(db *gorm.DB) repositories.ResetTokenRepository {
	return &ResetTokenRepository{db: db}
}

func (r *ResetTokenRepository) Create(ctx context.Context, token *entities.PasswordResetToken) error {
	model := resetTokenToModel(token)

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	token.ID = model.ID
	token.CreatedAt = time.Unix(model.CreatedAt, 0).UTC()
	return nil
}

func (r *ResetTokenRepository) FindByToken(ctx context.Context, token string) (*entities.PasswordResetToken, error) {
	var model PasswordResetTokenModel

	db := getDB(ctx, r.db)
	// Coincidencia exacta; el usuario dueño viene precargado para que el
	// servicio pueda detectar tokens colgantes.
	if err := db.WithContext(ctx).
		Preload("User").
		Where("token = ?", token).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return resetTokenToEntity(&model), nil
}

func (r *ResetTokenRepository) Update(ctx context.Context, token *entities.PasswordResetToken) error {
	model := resetTokenToModel(token)

	db := getDB(ctx, r.db)
	return db.WithContext(ctx).Save(model).Error
}

func (r *ResetTokenRepository) CountForUserSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	db := getDB(ctx, r.db)

	var count int64
	err := db.WithContext(ctx).
		Model(&PasswordResetTokenModel{}).
		Where("user_id = ? AND created_at > ?", userID, since.Unix()).
		Count(&count).Error
	return count, err
}

func (r *ResetTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	db := getDB(ctx, r.db)
	result := db.WithContext(ctx).
		Where("expires_at < ?", now.Unix()).
		Delete(&PasswordResetTokenModel{})
	return result.RowsAffected, result.Error
}

func (r *ResetTokenRepository) DeleteForUserSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	db := getDB(ctx, r.db)
	result := db.WithContext(ctx).
		Where("user_id = ? AND created_at > ?", userID, since.Unix()).
		Delete(&PasswordResetTokenModel{})
	return result.RowsAffected, result.Error
}

func (r *ResetTokenRepository) StatsSince(ctx context.Context, since time.Time) ([]repositories.ResetAttemptStat, error) {
	db := getDB(ctx, r.db)

	var rows []struct {
		UserID      uint
		Email       string
		Attempts    int
		LastAttempt int64
	}

	err := db.WithContext(ctx).
		Model(&PasswordResetTokenModel{}).
		Select("password_reset_tokens.user_id AS user_id, users.email AS email, COUNT(*) AS attempts, MAX(password_reset_tokens.created_at) AS last_attempt").
		Joins("JOIN users ON users.id = password_reset_tokens.user_id").
		Where("password_reset_tokens.created_at > ?", since.Unix()).
		Group("password_reset_tokens.user_id, users.email").
		Order("attempts DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := make([]repositories.ResetAttemptStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, repositories.ResetAttemptStat{
			UserID:      row.UserID,
			Email:       row.Email,
			Attempts:    row.Attempts,
			LastAttempt: time.Unix(row.LastAttempt, 0).UTC(),
		})
	}
	return stats, nil
}

// Conversores
func resetTokenToModel(token *entities.PasswordResetToken) *PasswordResetTokenModel {
	model := &PasswordResetTokenModel{
		ID:        token.ID,
		Token:     token.Token,
		UserID:    token.UserID,
		ExpiresAt: token.ExpiresAt.Unix(),
		UsedAt:    unixPtr(token.UsedAt),
	}
	if !token.CreatedAt.IsZero() {
		model.CreatedAt = token.CreatedAt.Unix()
	}
	return model
}

func resetTokenToEntity(model *PasswordResetTokenModel) *entities.PasswordResetToken {
	token := &entities.PasswordResetToken{
		ID:        model.ID,
		Token:     model.Token,
		UserID:    model.UserID,
		CreatedAt: time.Unix(model.CreatedAt, 0).UTC(),
		ExpiresAt: time.Unix(model.ExpiresAt, 0).UTC(),
		UsedAt:    timePtr(model.UsedAt),
	}
	if model.User != nil {
		token.User = userToEntity(model.User)
	}
	return token
}
