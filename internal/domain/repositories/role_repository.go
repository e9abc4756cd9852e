package repositories

import (
	"context"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
)

// RoleRepository define la interfaz de persistencia de roles.
type RoleRepository interface {
	Create(ctx context.Context, role *entities.Role) error
	FindByID(ctx context.Context, id uint) (*entities.Role, error)
	FindByName(ctx context.Context, name string) (*entities.Role, error)
	Update(ctx context.Context, role *entities.Role) error
	// Delete aplica borrado lógico.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters RoleFilters) ([]*entities.Role, int64, error)
}

// RoleFilters contiene filtros para el listado de roles.
type RoleFilters struct {
	Search   string
	Page     int
	PageSize int
}
