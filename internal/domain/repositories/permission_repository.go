package repositories

import (
	"context"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
)

// PermissionRepository define la interfaz de persistencia de permisos
// por usuario y módulo. La unicidad de (UserID, ModuleID) la garantiza
// un índice en la capa de almacenamiento.
type PermissionRepository interface {
	Create(ctx context.Context, permission *entities.UserPermission) error
	FindByID(ctx context.Context, id uint) (*entities.UserPermission, error)
	// FindByUserAndModule devuelve (nil, nil) si no hay registro: la
	// ausencia es el estado por defecto (denegar), no un error.
	FindByUserAndModule(ctx context.Context, userID, moduleID uint) (*entities.UserPermission, error)
	Update(ctx context.Context, permission *entities.UserPermission) error
	Delete(ctx context.Context, id uint) error
	DeleteByUserAndModule(ctx context.Context, userID, moduleID uint) error
	DeleteAllForUser(ctx context.Context, userID uint) (int64, error)
	// ListByUser devuelve los permisos del usuario con el módulo cargado,
	// ordenados por nombre de módulo.
	ListByUser(ctx context.Context, userID uint) ([]*entities.UserPermission, error)
	ListByModule(ctx context.Context, moduleID uint) ([]*entities.UserPermission, error)
	// CountByModule cuenta los permisos que referencian un módulo.
	CountByModule(ctx context.Context, moduleID uint) (int64, error)
}
