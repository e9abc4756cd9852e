package repositories

import (
	"context"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
)

// TaskRepository define la interfaz de persistencia de tareas.
type TaskRepository interface {
	Create(ctx context.Context, task *entities.TaskItem) error
	FindByID(ctx context.Context, id uint) (*entities.TaskItem, error)
	Update(ctx context.Context, task *entities.TaskItem) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters TaskFilters) ([]*entities.TaskItem, error)
}

// TaskFilters contiene filtros para el listado de tareas.
type TaskFilters struct {
	UserID    uint  // 0 = todas
	Completed *bool // nil = todas
}
