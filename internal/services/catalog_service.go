package services

import (
	"context"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	"github.com/dmirandam/backoffice-backend/internal/domain/errors"
	"github.com/dmirandam/backoffice-backend/internal/domain/ports"
	"github.com/dmirandam/backoffice-backend/internal/domain/repositories"
)

// CatalogService contiene la lógica de negocio para el catálogo.
type CatalogService struct {
	catalogRepo repositories.CatalogRepository
	logger      ports.Logger
}

// NewCatalogService crea un nuevo CatalogService.
func NewCatalogService(catalogRepo repositories.CatalogRepository, logger ports.Logger) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// CreateCatalogInput son los datos para crear un producto.
type CreateCatalogInput struct {
	Title       string
	Description string
	Category    string
	Image       *string
	Rating      float64
	Price       float64
	InStock     bool
}

// CreateCatalogItem crea un producto nuevo.
func (s *CatalogService) CreateCatalogItem(ctx context.Context, input CreateCatalogInput) (*entities.CatalogItem, error) {
	item := &entities.CatalogItem{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Image:       input.Image,
		Rating:      input.Rating,
		Price:       input.Price,
		InStock:     input.InStock,
	}
	if err := s.catalogRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("catalog item created", "item_id", item.ID, "category", item.Category)
	return item, nil
}

// GetCatalogItem busca un producto por ID.
func (s *CatalogService) GetCatalogItem(ctx context.Context, id uint) (*entities.CatalogItem, error) {
	item, err := s.catalogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.ErrCatalogNotFound
	}
	return item, nil
}

// UpdateCatalogInput son los datos para actualizar un producto.
type UpdateCatalogInput struct {
	Title       *string
	Description *string
	Category    *string
	Image       *string
	Rating      *float64
	Price       *float64
	InStock     *bool
}

// UpdateCatalogItem actualiza los campos presentes del producto.
func (s *CatalogService) UpdateCatalogItem(ctx context.Context, id uint, input UpdateCatalogInput) (*entities.CatalogItem, error) {
	item, err := s.catalogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.ErrCatalogNotFound
	}

	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Image != nil {
		item.Image = input.Image
	}
	if input.Rating != nil {
		item.Rating = *input.Rating
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.InStock != nil {
		item.InStock = *input.InStock
	}

	if err := s.catalogRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("catalog item updated", "item_id", item.ID)
	return item, nil
}

// DeleteCatalogItem elimina un producto.
func (s *CatalogService) DeleteCatalogItem(ctx context.Context, id uint) error {
	item, err := s.catalogRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return errors.ErrCatalogNotFound
	}

	if err := s.catalogRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("catalog item deleted", "item_id", id)
	return nil
}

// ListCatalogItems lista productos con filtros.
func (s *CatalogService) ListCatalogItems(ctx context.Context, filters repositories.CatalogFilters) ([]*entities.CatalogItem, error) {
	return s.catalogRepo.List(ctx, filters)
}
