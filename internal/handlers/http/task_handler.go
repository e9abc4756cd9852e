package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmirandam/backoffice-backend/internal/domain/repositories"
	"github.com/dmirandam/backoffice-backend/internal/handlers/dto"
	"github.com/dmirandam/backoffice-backend/internal/services"
)

// TaskHandler atiende las peticiones HTTP de tareas.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler crea un nuevo TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask crea una nueva tarea.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		UserID:      req.UserID,
	})
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

// GetTask busca una tarea por ID.
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), id)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// UpdateTask actualiza una tarea.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), id, services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    req.Priority,
	})
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// DeleteTask elimina una tarea.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), id); err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "task_deleted")})
}

// ListTasks lista tareas con filtros opcionales por usuario y estado.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	filters := repositories.TaskFilters{}

	if raw := c.Query("user_id"); raw != "" {
		if userID, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filters.UserID = uint(userID)
		}
	}
	if raw := c.Query("completed"); raw != "" {
		completed := raw == "true"
		filters.Completed = &completed
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), filters)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponses(tasks))
}
