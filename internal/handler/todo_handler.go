package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"todopro/internal/model"
	"todopro/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TaskRepository is the storage surface the todo handler needs.
type TaskRepository interface {
	List(ctx context.Context) ([]model.Task, error)
	GetByID(ctx context.Context, id string) (*model.Task, error)
	Create(ctx context.Context, task *model.Task) error
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id string) (bool, error)
	ByDateRange(ctx context.Context, start, end string) ([]model.Task, error)
	Stats(ctx context.Context) ([]model.StatRow, error)
}

type TodoHandler struct {
	repo TaskRepository
}

func NewTodoHandler(repo TaskRepository) *TodoHandler {
	return &TodoHandler{repo: repo}
}

// GetAll returns every task, most recently created first
func (h *TodoHandler) GetAll(c *gin.Context) {
	tasks, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve todos"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetByID returns a single task or 404
func (h *TodoHandler) GetByID(c *gin.Context) {
	task, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve todo"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// Create assigns the id and timestamps server-side and stores the task
func (h *TodoHandler) Create(c *gin.Context) {
	var req model.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Priority != "" && !req.Priority.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}
	if req.Status != "" && !req.Status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	task := &model.Task{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		Category:    req.Category,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
		ParentID:    req.ParentID,
		OrderIndex:  req.OrderIndex,
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	if task.Status == "" {
		task.Status = model.StatusPending
	}
	if task.Category == "" {
		task.Category = model.DefaultCategory
	}

	if err := h.repo.Create(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo"})
		return
	}
	c.JSON(http.StatusCreated, task)
}

// Update merges a partial patch into the stored task. When the patch moves
// the task to completed without supplying completed_at, the server stamps it.
func (h *TodoHandler) Update(c *gin.Context) {
	var patch model.UpdateTaskRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if patch.Priority != nil && !patch.Priority.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	task, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve todo"})
		return
	}

	task.ApplyPatch(patch, time.Now())

	if err := h.repo.Update(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// Delete removes a task and answers whether a row was deleted
func (h *TodoHandler) Delete(c *gin.Context) {
	deleted, err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// GetByDateRange returns tasks due between the two bounds, inclusive
func (h *TodoHandler) GetByDateRange(c *gin.Context) {
	start := c.Param("startDate")
	end := c.Param("endDate")
	if _, err := model.ParseDate(start); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date"})
		return
	}
	if _, err := model.ParseDate(end); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date"})
		return
	}

	tasks, err := h.repo.ByDateRange(c.Request.Context(), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve todos"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetStats returns grouped task counts for the dashboard
func (h *TodoHandler) GetStats(c *gin.Context) {
	rows, err := h.repo.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stats"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
