package gateway

import (
	"context"
	"strconv"
	"time"

	"todopro/internal/model"
)

// Local is the synthetic strategy: it fabricates structurally valid tasks
// from client-available data only, so the UI keeps working with no backend.
type Local struct {
	// Now is the clock used for ids and timestamps; defaults to time.Now.
	Now func() time.Time
}

func NewLocal() *Local {
	return &Local{Now: time.Now}
}

func (l *Local) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

// List returns the built-in seed list so a first load against a dead backend
// never renders an empty screen.
func (l *Local) List(ctx context.Context) ([]model.Task, error) {
	return SeedTasks(), nil
}

// Create synthesizes a task locally: id from the millisecond clock, defaults
// for unset fields, both timestamps stamped now.
func (l *Local) Create(ctx context.Context, req model.CreateTaskRequest) (model.Task, error) {
	now := l.now()
	stamp := now.UTC().Format(time.RFC3339)

	task := model.Task{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		Category:    req.Category,
		DueDate:     req.DueDate,
		CreatedAt:   stamp,
		UpdatedAt:   stamp,
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
	return task, nil
}

// Update applies the patch to the caller's copy; the merge and completed_at
// stamping rules are the same ones the backend applies.
func (l *Local) Update(ctx context.Context, current model.Task, patch model.UpdateTaskRequest) (model.Task, error) {
	current.ApplyPatch(patch, l.now())
	return current, nil
}

// Delete succeeds unconditionally; removing the task from the local
// collection is the whole operation.
func (l *Local) Delete(ctx context.Context, id string) error {
	return nil
}

// SeedTasks is the illustrative list shown when the backend cannot be
// reached on first load.
func SeedTasks() []model.Task {
	return []model.Task{
		{
			ID:          "1",
			Title:       "Complete project setup",
			Description: "Set up the development environment and project structure",
			Priority:    model.PriorityHigh,
			Status:      model.StatusCompleted,
			Category:    "Development",
			DueDate:     "2024-01-15",
			CreatedAt:   "2024-01-10T10:00:00Z",
			UpdatedAt:   "2024-01-12T10:00:00Z",
			CompletedAt: "2024-01-12T15:30:00Z",
		},
		{
			ID:          "2",
			Title:       "Design user interface",
			Description: "Create mockups and wireframes for the application",
			Priority:    model.PriorityMedium,
			Status:      model.StatusInProgress,
			Category:    "Design",
			DueDate:     "2024-01-20",
			CreatedAt:   "2024-01-11T09:00:00Z",
			UpdatedAt:   "2024-01-11T09:00:00Z",
		},
		{
			ID:          "3",
			Title:       "Write documentation",
			Description: "Create comprehensive documentation for the API",
			Priority:    model.PriorityLow,
			Status:      model.StatusPending,
			Category:    "Documentation",
			DueDate:     "2024-01-25",
			CreatedAt:   "2024-01-12T14:00:00Z",
			UpdatedAt:   "2024-01-12T14:00:00Z",
		},
	}
}
