package dto

import (
	"time"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
)

// CreateCatalogRequest representa la petición para crear un producto.
type CreateCatalogRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=200"`
	Description string  `json:"description" binding:"omitempty,max=1000"`
	Category    string  `json:"category" binding:"required,min=1,max=100"`
	Image       *string `json:"image" binding:"omitempty,max=255"`
	Rating      float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	Price       float64 `json:"price" binding:"omitempty,min=0"`
	InStock     *bool   `json:"in_stock"`
}

// UpdateCatalogRequest representa la petición para actualizar un producto.
type UpdateCatalogRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string  `json:"description" binding:"omitempty,max=1000"`
	Category    *string  `json:"category" binding:"omitempty,min=1,max=100"`
	Image       *string  `json:"image" binding:"omitempty,max=255"`
	Rating      *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	InStock     *bool    `json:"in_stock"`
}

// CatalogResponse representa la respuesta de un producto.
type CatalogResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Image       *string   `json:"image,omitempty"`
	Rating      float64   `json:"rating"`
	Price       float64   `json:"price"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCatalogResponse convierte una entidad CatalogItem a CatalogResponse.
func ToCatalogResponse(item *entities.CatalogItem) CatalogResponse {
	return CatalogResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Category:    item.Category,
		Image:       item.Image,
		Rating:      item.Rating,
		Price:       item.Price,
		InStock:     item.InStock,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// ToCatalogResponses convierte una lista de entidades CatalogItem.
func ToCatalogResponses(items []*entities.CatalogItem) []CatalogResponse {
	responses := make([]CatalogResponse, len(items))
	for i, item := range items {
		responses[i] = ToCatalogResponse(item)
	}
	return responses
}
