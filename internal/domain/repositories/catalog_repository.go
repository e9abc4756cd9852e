package repositories

import (
	"context"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
)

// CatalogRepository define la interfaz de persistencia del catálogo.
type CatalogRepository interface {
	Create(ctx context.Context, item *entities.CatalogItem) error
	FindByID(ctx context.Context, id uint) (*entities.CatalogItem, error)
	Update(ctx context.Context, item *entities.CatalogItem) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters CatalogFilters) ([]*entities.CatalogItem, error)
}

// CatalogFilters contiene filtros para el listado del catálogo.
type CatalogFilters struct {
	Category    string
	OnlyInStock bool
}
