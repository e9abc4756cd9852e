package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmirandam/backoffice-backend/internal/domain/repositories"
	"github.com/dmirandam/backoffice-backend/internal/handlers/dto"
	"github.com/dmirandam/backoffice-backend/internal/services"
)

// CatalogHandler atiende las peticiones HTTP del catálogo.
type CatalogHandler struct {
	catalogService *services.CatalogService
}

// NewCatalogHandler crea un nuevo CatalogHandler.
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// CreateCatalogItem crea un nuevo producto.
func (h *CatalogHandler) CreateCatalogItem(c *gin.Context) {
	var req dto.CreateCatalogRequest
	if !bindJSON(c, &req) {
		return
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	item, err := h.catalogService.CreateCatalogItem(c.Request.Context(), services.CreateCatalogInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
		Rating:      req.Rating,
		Price:       req.Price,
		InStock:     inStock,
	})
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCatalogResponse(item))
}

// GetCatalogItem busca un producto por ID.
func (h *CatalogHandler) GetCatalogItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.catalogService.GetCatalogItem(c.Request.Context(), id)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCatalogResponse(item))
}

// UpdateCatalogItem actualiza un producto.
func (h *CatalogHandler) UpdateCatalogItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCatalogRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.catalogService.UpdateCatalogItem(c.Request.Context(), id, services.UpdateCatalogInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
		Rating:      req.Rating,
		Price:       req.Price,
		InStock:     req.InStock,
	})
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCatalogResponse(item))
}

// DeleteCatalogItem elimina un producto.
func (h *CatalogHandler) DeleteCatalogItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteCatalogItem(c.Request.Context(), id); err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "catalog_deleted")})
}

// ListCatalogItems lista productos con filtros opcionales.
func (h *CatalogHandler) ListCatalogItems(c *gin.Context) {
	filters := repositories.CatalogFilters{
		Category:    c.Query("category"),
		OnlyInStock: c.Query("in_stock") == "true",
	}

	items, err := h.catalogService.ListCatalogItems(c.Request.Context(), filters)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCatalogResponses(items))
}
