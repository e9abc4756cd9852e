package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmirandam/backoffice-backend/internal/handlers/dto"
	"github.com/dmirandam/backoffice-backend/internal/services"
)

// PermissionHandler atiende las peticiones HTTP de permisos.
type PermissionHandler struct {
	permissionService *services.PermissionService
}

// NewPermissionHandler crea un nuevo PermissionHandler.
func NewPermissionHandler(permissionService *services.PermissionService) *PermissionHandler {
	return &PermissionHandler{
		permissionService: permissionService,
	}
}

// AssignPermission asigna un permiso nuevo a un par (usuario, módulo).
func (h *PermissionHandler) AssignPermission(c *gin.Context) {
	var req dto.AssignPermissionRequest
	if !bindJSON(c, &req) {
		return
	}

	permission, err := h.permissionService.AssignPermission(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPermissionResponse(permission))
}

// UpdatePermission cambia el nivel de un permiso existente.
func (h *PermissionHandler) UpdatePermission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePermissionRequest
	if !bindJSON(c, &req) {
		return
	}

	permission, err := h.permissionService.UpdatePermission(c.Request.Context(), id, entityPermission(req.PermissionType))
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPermissionResponse(permission))
}

// GetUserPermissions lista los permisos de un usuario.
func (h *PermissionHandler) GetUserPermissions(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	permissions, err := h.permissionService.GetUserPermissions(c.Request.Context(), userID)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPermissionResponses(permissions))
}

// UpdateUserPermissions aplica un lote de permisos a un usuario.
func (h *PermissionHandler) UpdateUserPermissions(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	var req dto.UpdateUserPermissionsRequest
	if !bindJSON(c, &req) {
		return
	}

	err := h.permissionService.UpdateUserPermissions(c.Request.Context(), userID, req.ToEntries())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "permissions_updated")})
}

// RemovePermission elimina el permiso del par (usuario, módulo).
func (h *PermissionHandler) RemovePermission(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	moduleID, ok := parseIDParam(c, "module_id")
	if !ok {
		return
	}

	if err := h.permissionService.RemovePermission(c.Request.Context(), userID, moduleID); err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "permission_removed")})
}

// RemoveAllUserPermissions elimina todos los permisos de un usuario.
func (h *PermissionHandler) RemoveAllUserPermissions(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	deleted, err := h.permissionService.RemoveAllUserPermissions(c.Request.Context(), userID)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": dto.T(c, "permission_removed"),
		"deleted": deleted,
	})
}
