package repositories

import (
	"context"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
)

// UserRepository define la interfaz de persistencia de usuarios.
// Todas las lecturas excluyen explícitamente los registros con borrado
// lógico; no hay filtro ambiental que una consulta pueda saltarse.
// Los Find devuelven (nil, nil) cuando no existe el registro.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	// FindByIDWithRole carga además el rol del usuario.
	FindByIDWithRole(ctx context.Context, id uint) (*entities.User, error)
	// FindByEmail busca por email sin distinguir mayúsculas.
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	// Delete aplica borrado lógico.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters UserFilters) ([]*entities.User, int64, error)
	// CountByRole cuenta usuarios activos asignados a un rol.
	CountByRole(ctx context.Context, roleID uint) (int64, error)
}

// UserFilters contiene filtros para el listado de usuarios.
type UserFilters struct {
	Search   string // coincide contra nombre, apellido o email
	SortBy   string // firstname, lastname, email, createdat
	SortDesc bool
	Page     int // empieza en 1
	PageSize int // default 10, max 100
}
