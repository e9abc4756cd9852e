package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmirandam/backoffice-backend/internal/domain/repositories"
	"github.com/dmirandam/backoffice-backend/internal/handlers/dto"
	"github.com/dmirandam/backoffice-backend/internal/services"
)

// ModuleHandler atiende las peticiones HTTP de módulos.
type ModuleHandler struct {
	moduleService *services.ModuleService
}

// NewModuleHandler crea un nuevo ModuleHandler.
func NewModuleHandler(moduleService *services.ModuleService) *ModuleHandler {
	return &ModuleHandler{
		moduleService: moduleService,
	}
}

// CreateModule crea un nuevo módulo.
func (h *ModuleHandler) CreateModule(c *gin.Context) {
	var req dto.CreateModuleRequest
	if !bindJSON(c, &req) {
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	module, err := h.moduleService.CreateModule(c.Request.Context(), services.CreateModuleInput{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Path:        req.Path,
		Icon:        req.Icon,
		Order:       req.Order,
		IsActive:    isActive,
	})
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToModuleResponse(module))
}

// GetModule busca un módulo por ID.
func (h *ModuleHandler) GetModule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	module, err := h.moduleService.GetModule(c.Request.Context(), id)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModuleResponse(module))
}

// UpdateModule actualiza un módulo.
func (h *ModuleHandler) UpdateModule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateModuleRequest
	if !bindJSON(c, &req) {
		return
	}

	module, err := h.moduleService.UpdateModule(c.Request.Context(), id, services.UpdateModuleInput{
		Name:        req.Name,
		Description: req.Description,
		Path:        req.Path,
		Icon:        req.Icon,
		Order:       req.Order,
		IsActive:    req.IsActive,
	})
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModuleResponse(module))
}

// DeleteModule aplica borrado lógico a un módulo.
func (h *ModuleHandler) DeleteModule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.moduleService.DeleteModule(c.Request.Context(), id); err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "module_deleted")})
}

// ListModules lista módulos ordenados por Order.
func (h *ModuleHandler) ListModules(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	filters := repositories.ModuleFilters{
		Search:     c.Query("search"),
		OnlyActive: c.Query("only_active") == "true",
		Page:       page,
		PageSize:   pageSize,
	}

	modules, total, err := h.moduleService.ListModules(c.Request.Context(), filters)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PaginatedResponse{
		Data:     dto.ToModuleResponses(modules),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}
