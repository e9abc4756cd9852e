package dto

import (
	"time"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
)

// CreateRoleRequest representa la petición para crear un rol.
type CreateRoleRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// UpdateRoleRequest representa la petición para actualizar un rol.
type UpdateRoleRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// RoleResponse representa la respuesta de un rol.
type RoleResponse struct {
	ID                   uint       `json:"id"`
	Name                 string     `json:"name"`
	Description          *string    `json:"description,omitempty"`
	IsSystemRole         bool       `json:"is_system_role"`
	GrantsAllPermissions bool       `json:"grants_all_permissions"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            *time.Time `json:"updated_at,omitempty"`
}

// ToRoleResponse convierte una entidad Role a RoleResponse.
func ToRoleResponse(role *entities.Role) RoleResponse {
	return RoleResponse{
		ID:                   role.ID,
		Name:                 role.Name,
		Description:          role.Description,
		IsSystemRole:         role.IsSystemRole,
		GrantsAllPermissions: role.GrantsAllPermissions,
		CreatedAt:            role.CreatedAt,
		UpdatedAt:            role.UpdatedAt,
	}
}

// ToRoleResponses convierte una lista de entidades Role a RoleResponse.
func ToRoleResponses(roles []*entities.Role) []RoleResponse {
	responses := make([]RoleResponse, len(roles))
	for i, role := range roles {
		responses[i] = ToRoleResponse(role)
	}
	return responses
}
