package dto

import (
	"time"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
)

// CreateModuleRequest representa la petición para crear un módulo.
type CreateModuleRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Code        string  `json:"code" binding:"required,min=2,max=100,uppercase"`
	Description *string `json:"description" binding:"omitempty,max=255"`
	Path        string  `json:"path" binding:"required,max=100"`
	Icon        string  `json:"icon" binding:"omitempty,max=100"`
	Order       int     `json:"order" binding:"omitempty,min=0"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateModuleRequest representa la petición para actualizar un módulo.
// El código estable no se puede cambiar.
type UpdateModuleRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
	Path        *string `json:"path" binding:"omitempty,max=100"`
	Icon        *string `json:"icon" binding:"omitempty,max=100"`
	Order       *int    `json:"order" binding:"omitempty,min=0"`
	IsActive    *bool   `json:"is_active"`
}

// ModuleResponse representa la respuesta de un módulo.
type ModuleResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Code        string     `json:"code"`
	Description *string    `json:"description,omitempty"`
	Path        string     `json:"path"`
	Icon        string     `json:"icon"`
	Order       int        `json:"order"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// ToModuleResponse convierte una entidad Module a ModuleResponse.
func ToModuleResponse(module *entities.Module) ModuleResponse {
	return ModuleResponse{
		ID:          module.ID,
		Name:        module.Name,
		Code:        module.Code,
		Description: module.Description,
		Path:        module.Path,
		Icon:        module.Icon,
		Order:       module.Order,
		IsActive:    module.IsActive,
		CreatedAt:   module.CreatedAt,
		UpdatedAt:   module.UpdatedAt,
	}
}

// ToModuleResponses convierte una lista de entidades Module a ModuleResponse.
func ToModuleResponses(modules []*entities.Module) []ModuleResponse {
	responses := make([]ModuleResponse, len(modules))
	for i, module := range modules {
		responses[i] = ToModuleResponse(module)
	}
	return responses
}
