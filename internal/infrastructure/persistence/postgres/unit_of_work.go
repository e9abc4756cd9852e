package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/dmirandam/backoffice-backend/internal/domain/ports"
)

// contextKey evita colisiones con otras claves de contexto.
type contextKey string

const txKey contextKey = "tx"

// getDB devuelve la transacción del contexto si existe; si no, la conexión
// base. Todos los repositorios pasan por aquí para participar en la
// transacción activa.
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return db
}

// UnitOfWork implementa ports.UnitOfWork sobre transacciones GORM.
type UnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork crea un nuevo UnitOfWork.
func NewUnitOfWork(db *gorm.DB) ports.UnitOfWork {
	return &UnitOfWork{db: db}
}

func (uow *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return ctx, tx.Error
	}
	return context.WithValue(ctx, txKey, tx), nil
}

func (uow *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok {
		return nil
	}
	return tx.Commit().Error
}

func (uow *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok {
		return nil
	}
	return tx.Rollback().Error
}

func (uow *UnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	txCtx := context.WithValue(ctx, txKey, tx)

	if err := fn(txCtx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
