package dto

import (
	"time"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
)

// CreateTaskRequest representa la petición para crear una tarea.
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
	UserID      uint   `json:"user_id" binding:"required"`
}

// UpdateTaskRequest representa la petición para actualizar una tarea.
type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Completed   *bool   `json:"completed"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

// TaskResponse representa la respuesta de una tarea.
type TaskResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	Priority    string    `json:"priority"`
	UserID      uint      `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToTaskResponse convierte una entidad TaskItem a TaskResponse.
func ToTaskResponse(task *entities.TaskItem) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		Priority:    task.Priority,
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToTaskResponses convierte una lista de entidades TaskItem a TaskResponse.
func ToTaskResponses(tasks []*entities.TaskItem) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskResponse(task)
	}
	return responses
}
