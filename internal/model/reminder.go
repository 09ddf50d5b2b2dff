package model

type RecurrenceType string

const (
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
	RecurrenceYearly  RecurrenceType = "yearly"
)

// Reminder lives outside the task store; it is consulted only as display data.
type Reminder struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description,omitempty"`
	ReminderDate   string         `json:"reminder_date"`
	ReminderTime   string         `json:"reminder_time"`
	Priority       Priority       `json:"priority"`
	Category       string         `json:"category"`
	IsRecurring    bool           `json:"is_recurring"`
	RecurrenceType RecurrenceType `json:"recurrence_type,omitempty"`
	IsCompleted    bool           `json:"is_completed"`
	CreatedAt      string         `json:"created_at"`
	UpdatedAt      string         `json:"updated_at"`
}

type CreateReminderRequest struct {
	Title          string         `json:"title" binding:"required"`
	Description    string         `json:"description"`
	ReminderDate   string         `json:"reminder_date" binding:"required"`
	ReminderTime   string         `json:"reminder_time" binding:"required"`
	Priority       Priority       `json:"priority"`
	Category       string         `json:"category"`
	IsRecurring    bool           `json:"is_recurring"`
	RecurrenceType RecurrenceType `json:"recurrence_type"`
}

type UpdateReminderRequest struct {
	Title          *string         `json:"title"`
	Description    *string         `json:"description"`
	ReminderDate   *string         `json:"reminder_date"`
	ReminderTime   *string         `json:"reminder_time"`
	Priority       *Priority       `json:"priority"`
	Category       *string         `json:"category"`
	IsRecurring    *bool           `json:"is_recurring"`
	RecurrenceType *RecurrenceType `json:"recurrence_type"`
	IsCompleted    *bool           `json:"is_completed"`
}
