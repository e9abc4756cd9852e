package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	"github.com/dmirandam/backoffice-backend/internal/domain/repositories"
)

// TaskRepository implementa repositories.TaskRepository.
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository crea un nuevo TaskRepository.
func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *entities.TaskItem) error {
	model := taskToModel(task)

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	task.ID = model.ID
	task.CreatedAt = time.Unix(model.CreatedAt, 0).UTC()
	task.UpdatedAt = time.Unix(model.UpdatedAt, 0).UTC()
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*entities.TaskItem, error) {
	var model TaskModel

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return taskToEntity(&model), nil
}

func (r *TaskRepository) Update(ctx context.Context, task *entities.TaskItem) error {
	model := taskToModel(task)

	db := getDB(ctx, r.db)
	return db.WithContext(ctx).Save(model).Error
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)
	return db.WithContext(ctx).Delete(&TaskModel{}, id).Error
}

func (r *TaskRepository) List(ctx context.Context, filters repositories.TaskFilters) ([]*entities.TaskItem, error) {
	var models []*TaskModel

	db := getDB(ctx, r.db)
	query := db.WithContext(ctx).Model(&TaskModel{})

	if filters.UserID != 0 {
		query = query.Where("user_id = ?", filters.UserID)
	}
	if filters.Completed != nil {
		query = query.Where("completed = ?", *filters.Completed)
	}

	if err := query.Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	tasks := make([]*entities.TaskItem, 0, len(models))
	for _, model := range models {
		tasks = append(tasks, taskToEntity(model))
	}
	return tasks, nil
}

// Conversores
func taskToModel(task *entities.TaskItem) *TaskModel {
	model := &TaskModel{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		Priority:    task.Priority,
		UserID:      task.UserID,
	}
	if !task.CreatedAt.IsZero() {
		model.CreatedAt = task.CreatedAt.Unix()
	}
	return model
}

func taskToEntity(model *TaskModel) *entities.TaskItem {
	return &entities.TaskItem{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Completed:   model.Completed,
		Priority:    model.Priority,
		UserID:      model.UserID,
		CreatedAt:   time.Unix(model.CreatedAt, 0).UTC(),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0).UTC(),
	}
}
