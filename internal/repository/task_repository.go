package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todopro/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// List retrieves all tasks, most recently created first
func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// GetByID retrieves a task by its ID
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// Create adds a new task to the database
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// Update overwrites every column of an existing task. Save is deliberately
// avoided: it would insert on a missing row instead of reporting it.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	result := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("id = ?", task.ID).
		Select("*").
		Updates(task)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a task by its ID and reports whether a row was removed.
// Children of the removed task cascade at the storage layer.
func (r *TaskRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ByDateRange retrieves tasks with a due date between the bounds inclusive,
// ascending by due date
func (r *TaskRepository) ByDateRange(ctx context.Context, start, end string) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).
		Where("due_date BETWEEN ? AND ?", start, end).
		Order("due_date ASC").
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// Stats returns task counts grouped by status, priority, category and
// creation day, newest day first
func (r *TaskRepository) Stats(ctx context.Context) ([]model.StatRow, error) {
	var rows []model.StatRow
	result := r.db.WithContext(ctx).Raw(`
		SELECT
			status,
			priority,
			category,
			COUNT(*) AS count,
			DATE(created_at) AS date
		FROM tasks
		GROUP BY status, priority, category, DATE(created_at)
		ORDER BY date DESC
	`).Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}
