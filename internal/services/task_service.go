package services

import (
	"context"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	"github.com/dmirandam/backoffice-backend/internal/domain/errors"
	"github.com/dmirandam/backoffice-backend/internal/domain/ports"
	"github.com/dmirandam/backoffice-backend/internal/domain/repositories"
)

// TaskService contiene la lógica de negocio para tareas.
type TaskService struct {
	taskRepo repositories.TaskRepository
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewTaskService crea un nuevo TaskService.
func NewTaskService(
	taskRepo repositories.TaskRepository,
	userRepo repositories.UserRepository,
	logger ports.Logger,
) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateTaskInput son los datos para crear una tarea.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    string
	UserID      uint
}

// CreateTask crea una tarea asignada a un usuario existente.
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*entities.TaskItem, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	priority := input.Priority
	if priority == "" {
		priority = entities.TaskPriorityMedium
	}

	task := &entities.TaskItem{
		Title:       input.Title,
		Description: input.Description,
		Priority:    priority,
		UserID:      input.UserID,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Info("task created", "task_id", task.ID, "user_id", task.UserID)
	return task, nil
}

// GetTask busca una tarea por ID.
func (s *TaskService) GetTask(ctx context.Context, id uint) (*entities.TaskItem, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errors.ErrTaskNotFound
	}
	return task, nil
}

// UpdateTaskInput son los datos para actualizar una tarea.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *string
}

// UpdateTask actualiza los campos presentes de la tarea.
func (s *TaskService) UpdateTask(ctx context.Context, id uint, input UpdateTaskInput) (*entities.TaskItem, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errors.ErrTaskNotFound
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Info("task updated", "task_id", task.ID)
	return task, nil
}

// DeleteTask elimina una tarea.
func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return errors.ErrTaskNotFound
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("task deleted", "task_id", id)
	return nil
}

// ListTasks lista tareas con filtros.
func (s *TaskService) ListTasks(ctx context.Context, filters repositories.TaskFilters) ([]*entities.TaskItem, error) {
	return s.taskRepo.List(ctx, filters)
}
