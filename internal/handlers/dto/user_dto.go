package dto

import (
	"time"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	"github.com/dmirandam/backoffice-backend/internal/services"
)

// CreateUserRequest representa la petición para crear un usuario.
type CreateUserRequest struct {
	FirstName string  `json:"first_name" binding:"required,min=2,max=100"`
	LastName  string  `json:"last_name" binding:"required,min=2,max=100"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8,max=72"`
	RoleID    uint    `json:"role_id" binding:"required"`
	Status    string  `json:"status" binding:"omitempty,oneof=Active Inactive Suspended"`
	Avatar    *string `json:"avatar" binding:"omitempty,max=255"`
}

// ToInput convierte la petición al input del servicio.
func (r *CreateUserRequest) ToInput() services.CreateUserInput {
	return services.CreateUserInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		RoleID:    r.RoleID,
		Status:    entities.UserStatus(r.Status),
		Avatar:    r.Avatar,
	}
}

// UpdateUserRequest representa la petición para actualizar un usuario.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=2,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,min=2,max=100"`
	Email     *string `json:"email" binding:"omitempty,email"`
	RoleID    *uint   `json:"role_id" binding:"omitempty"`
	Status    *string `json:"status" binding:"omitempty,oneof=Active Inactive Suspended"`
	Avatar    *string `json:"avatar" binding:"omitempty,max=255"`
}

// ToInput convierte la petición al input del servicio.
func (r *UpdateUserRequest) ToInput() services.UpdateUserInput {
	input := services.UpdateUserInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		RoleID:    r.RoleID,
		Avatar:    r.Avatar,
	}
	if r.Status != nil {
		status := entities.UserStatus(*r.Status)
		input.Status = &status
	}
	return input
}

// ChangePasswordRequest representa la petición para cambiar contraseña.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=72"`
}

// UserResponse representa la respuesta de un usuario.
type UserResponse struct {
	ID          uint       `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email"`
	RoleID      uint       `json:"role_id"`
	Role        *RoleResponse `json:"role,omitempty"`
	Status      string     `json:"status"`
	Avatar      *string    `json:"avatar,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// ToUserResponse convierte una entidad User a UserResponse.
func ToUserResponse(user *entities.User) UserResponse {
	response := UserResponse{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		FullName:    user.FullName(),
		Email:       user.Email,
		RoleID:      user.RoleID,
		Status:      string(user.Status),
		Avatar:      user.Avatar,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
		LastLoginAt: user.LastLoginAt,
	}
	if user.Role != nil {
		role := ToRoleResponse(user.Role)
		response.Role = &role
	}
	return response
}

// ToUserResponses convierte una lista de entidades User a UserResponse.
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
