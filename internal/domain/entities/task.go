package entities

import "time"

// Prioridades válidas de una tarea.
const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

// TaskItem representa una tarea asignada a un usuario.
type TaskItem struct {
	ID          uint
	Title       string
	Description string
	Completed   bool
	Priority    string
	UserID      uint
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User *User
}
