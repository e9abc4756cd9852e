package dto

import (
	"time"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	"github.com/dmirandam/backoffice-backend/internal/services"
)

// AssignPermissionRequest representa la petición para asignar un permiso.
type AssignPermissionRequest struct {
	UserID         uint `json:"user_id" binding:"required"`
	ModuleID       uint `json:"module_id" binding:"required"`
	PermissionType int  `json:"permission_type" binding:"oneof=0 10 20 30 40"`
}

// ToInput convierte la petición al input del servicio.
func (r *AssignPermissionRequest) ToInput() services.AssignPermissionInput {
	return services.AssignPermissionInput{
		UserID:         r.UserID,
		ModuleID:       r.ModuleID,
		PermissionType: entities.PermissionType(r.PermissionType),
	}
}

// UpdatePermissionRequest representa la petición para cambiar el nivel
// de un permiso existente.
type UpdatePermissionRequest struct {
	PermissionType int `json:"permission_type" binding:"oneof=0 10 20 30 40"`
}

// PermissionEntryRequest es un elemento del lote de actualización. Con
// id cero opera por par (usuario, módulo); con id actualiza ese registro.
type PermissionEntryRequest struct {
	ID             uint `json:"id"`
	ModuleID       uint `json:"module_id" binding:"required"`
	PermissionType int  `json:"permission_type" binding:"oneof=0 10 20 30 40"`
}

// UpdateUserPermissionsRequest representa el lote de permisos a aplicar
// para un usuario. Los módulos ausentes no se tocan.
type UpdateUserPermissionsRequest struct {
	Permissions []PermissionEntryRequest `json:"permissions" binding:"required,dive"`
}

// ToEntries convierte el lote a entradas del servicio.
func (r *UpdateUserPermissionsRequest) ToEntries() []services.PermissionEntry {
	entries := make([]services.PermissionEntry, len(r.Permissions))
	for i, p := range r.Permissions {
		entries[i] = services.PermissionEntry{
			ID:             p.ID,
			ModuleID:       p.ModuleID,
			PermissionType: entities.PermissionType(p.PermissionType),
		}
	}
	return entries
}

// PermissionResponse representa la respuesta de un permiso.
type PermissionResponse struct {
	ID             uint            `json:"id"`
	UserID         uint            `json:"user_id"`
	ModuleID       uint            `json:"module_id"`
	PermissionType int             `json:"permission_type"`
	PermissionName string          `json:"permission_name"`
	Module         *ModuleResponse `json:"module,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
}

// ToPermissionResponse convierte una entidad UserPermission a PermissionResponse.
func ToPermissionResponse(permission *entities.UserPermission) PermissionResponse {
	response := PermissionResponse{
		ID:             permission.ID,
		UserID:         permission.UserID,
		ModuleID:       permission.ModuleID,
		PermissionType: int(permission.PermissionType),
		PermissionName: permission.PermissionType.String(),
		CreatedAt:      permission.CreatedAt,
		UpdatedAt:      permission.UpdatedAt,
	}
	if permission.Module != nil {
		module := ToModuleResponse(permission.Module)
		response.Module = &module
	}
	return response
}

// ToPermissionResponses convierte una lista de permisos.
func ToPermissionResponses(permissions []*entities.UserPermission) []PermissionResponse {
	responses := make([]PermissionResponse, len(permissions))
	for i, permission := range permissions {
		responses[i] = ToPermissionResponse(permission)
	}
	return responses
}
