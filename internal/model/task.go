package model

import (
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Weight orders priorities for display sorting: high > medium > low.
// Unknown or empty values weigh the same as medium.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityLow:
		return 1
	default:
		return 2
	}
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

const DefaultCategory = "General"

// Task is the central work item. Date fields are carried as strings exactly as
// they travel on the wire (due_date is date-only, the timestamps RFC3339), so a
// malformed value degrades at the point of use instead of failing the whole decode.
type Task struct {
	ID          string   `json:"id" gorm:"primaryKey"`
	Title       string   `json:"title" gorm:"not null"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority" gorm:"default:medium"`
	Status      Status   `json:"status" gorm:"default:pending"`
	Category    string   `json:"category" gorm:"default:General"`
	DueDate     string   `json:"due_date"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	CompletedAt string   `json:"completed_at,omitempty"`
	ParentID    string   `json:"parent_id,omitempty" gorm:"index"`
	OrderIndex  int      `json:"order_index" gorm:"default:0"`
}

// dateLayouts covers the formats tasks arrive with: date-only due dates,
// RFC3339 timestamps, and the DATETIME DEFAULT CURRENT_TIMESTAMP form
// older backends stored.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ParseDate parses a task date string in any supported layout.
func ParseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// EffectiveDate is the single date used for calendar placement: the due date
// when present, the creation date otherwise.
func (t Task) EffectiveDate() (time.Time, error) {
	if t.DueDate != "" {
		return ParseDate(t.DueDate)
	}
	return ParseDate(t.CreatedAt)
}

// IsValidRecord reports whether the task carries the minimum fields every
// derived view requires. Records failing this are ignored, not rejected.
func (t Task) IsValidRecord() bool {
	return t.ID != "" && t.Title != ""
}

func (t Task) PriorityOrDefault() Priority {
	if t.Priority == "" {
		return PriorityMedium
	}
	return t.Priority
}

func (t Task) StatusOrDefault() Status {
	if t.Status == "" {
		return StatusPending
	}
	return t.Status
}

func (t Task) CategoryOrDefault() string {
	if t.Category == "" {
		return DefaultCategory
	}
	return t.Category
}

// CreateTaskRequest carries the fields a client may set when creating a task.
type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
	Category    string   `json:"category"`
	DueDate     string   `json:"due_date"`
	ParentID    string   `json:"parent_id"`
	OrderIndex  int      `json:"order_index"`
}

// UpdateTaskRequest is a partial patch; nil fields are left untouched.
type UpdateTaskRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Priority    *Priority `json:"priority"`
	Status      *Status   `json:"status"`
	Category    *string   `json:"category"`
	DueDate     *string   `json:"due_date"`
	ParentID    *string   `json:"parent_id"`
	OrderIndex  *int      `json:"order_index"`
	CompletedAt *string   `json:"completed_at"`
}

// ApplyPatch merges the patch into the task, refreshes updated_at and stamps
// completed_at on the first transition to completed when the patch does not
// supply one. completed_at is never cleared when status later moves away from
// completed; a reopened task keeps its old completion timestamp.
func (t *Task) ApplyPatch(patch UpdateTaskRequest, now time.Time) {
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
	}
	if patch.ParentID != nil {
		t.ParentID = *patch.ParentID
	}
	if patch.OrderIndex != nil {
		t.OrderIndex = *patch.OrderIndex
	}
	if patch.CompletedAt != nil {
		t.CompletedAt = *patch.CompletedAt
	}
	if t.Status == StatusCompleted && t.CompletedAt == "" {
		t.CompletedAt = now.UTC().Format(time.RFC3339)
	}
	t.UpdatedAt = now.UTC().Format(time.RFC3339)
}

// StatRow is one grouped row of the /api/stats aggregation.
type StatRow struct {
	Status   string `json:"status"`
	Priority string `json:"priority"`
	Category string `json:"category"`
	Count    int    `json:"count"`
	Date     string `json:"date"`
}
