package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmirandam/backoffice-backend/internal/domain/repositories"
	"github.com/dmirandam/backoffice-backend/internal/handlers/dto"
	"github.com/dmirandam/backoffice-backend/internal/services"
)

// RoleHandler atiende las peticiones HTTP de roles.
type RoleHandler struct {
	roleService *services.RoleService
}

// NewRoleHandler crea un nuevo RoleHandler.
func NewRoleHandler(roleService *services.RoleService) *RoleHandler {
	return &RoleHandler{
		roleService: roleService,
	}
}

// CreateRole crea un nuevo rol.
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req dto.CreateRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	role, err := h.roleService.CreateRole(c.Request.Context(), services.CreateRoleInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoleResponse(role))
}

// GetRole busca un rol por ID.
func (h *RoleHandler) GetRole(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	role, err := h.roleService.GetRole(c.Request.Context(), id)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoleResponse(role))
}

// UpdateRole actualiza un rol.
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	role, err := h.roleService.UpdateRole(c.Request.Context(), id, services.UpdateRoleInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoleResponse(role))
}

// DeleteRole aplica borrado lógico a un rol.
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.roleService.DeleteRole(c.Request.Context(), id); err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "role_deleted")})
}

// ListRoles lista roles con búsqueda y paginación.
func (h *RoleHandler) ListRoles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	filters := repositories.RoleFilters{
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	}

	roles, total, err := h.roleService.ListRoles(c.Request.Context(), filters)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PaginatedResponse{
		Data:     dto.ToRoleResponses(roles),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}
