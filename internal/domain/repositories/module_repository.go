package repositories

import (
	"context"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
)

// ModuleRepository define la interfaz de persistencia de módulos.
type ModuleRepository interface {
	Create(ctx context.Context, module *entities.Module) error
	FindByID(ctx context.Context, id uint) (*entities.Module, error)
	// FindByCode resuelve un módulo por su identificador estable.
	FindByCode(ctx context.Context, code string) (*entities.Module, error)
	Update(ctx context.Context, module *entities.Module) error
	// Delete aplica borrado lógico.
	Delete(ctx context.Context, id uint) error
	// List devuelve los módulos ordenados por Order.
	List(ctx context.Context, filters ModuleFilters) ([]*entities.Module, int64, error)
}

// ModuleFilters contiene filtros para el listado de módulos.
type ModuleFilters struct {
	Search     string
	OnlyActive bool
	Page       int
	PageSize   int
}
