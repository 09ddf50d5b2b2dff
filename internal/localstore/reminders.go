package localstore

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"todopro/internal/model"
)

type RemindersStore struct {
	path string
	mu   sync.Mutex

	// Now is the clock used for ids and timestamps; defaults to time.Now.
	Now func() time.Time
}

func NewRemindersStore(dir string) *RemindersStore {
	return &RemindersStore{path: filepath.Join(dir, "reminders.json"), Now: time.Now}
}

func (s *RemindersStore) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *RemindersStore) load() []model.Reminder {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return []model.Reminder{}
	}
	var reminders []model.Reminder
	if err := json.Unmarshal(raw, &reminders); err != nil {
		log.Printf("⚠️ Corrupted reminders storage, starting empty: %v", err)
		return []model.Reminder{}
	}
	return reminders
}

func (s *RemindersStore) save(reminders []model.Reminder) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(reminders, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

// LoadAll returns every stored reminder, most recently created first.
func (s *RemindersStore) LoadAll() ([]model.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

// Create stores a new reminder at the front of the list.
func (s *RemindersStore) Create(req model.CreateReminderRequest) (model.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	stamp := now.UTC().Format(time.RFC3339)
	reminder := model.Reminder{
		ID:             strconv.FormatInt(now.UnixMilli(), 10),
		Title:          req.Title,
		Description:    req.Description,
		ReminderDate:   req.ReminderDate,
		ReminderTime:   req.ReminderTime,
		Priority:       req.Priority,
		Category:       req.Category,
		IsRecurring:    req.IsRecurring,
		RecurrenceType: req.RecurrenceType,
		IsCompleted:    false,
		CreatedAt:      stamp,
		UpdatedAt:      stamp,
	}
	if reminder.Priority == "" {
		reminder.Priority = model.PriorityMedium
	}
	if reminder.Category == "" {
		reminder.Category = model.DefaultCategory
	}

	reminders := append([]model.Reminder{reminder}, s.load()...)
	if err := s.save(reminders); err != nil {
		return model.Reminder{}, err
	}
	return reminder, nil
}

// Update merges a partial patch into the reminder with the given id.
func (s *RemindersStore) Update(id string, patch model.UpdateReminderRequest) (model.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reminders := s.load()
	for i := range reminders {
		if reminders[i].ID != id {
			continue
		}
		if patch.Title != nil {
			reminders[i].Title = *patch.Title
		}
		if patch.Description != nil {
			reminders[i].Description = *patch.Description
		}
		if patch.ReminderDate != nil {
			reminders[i].ReminderDate = *patch.ReminderDate
		}
		if patch.ReminderTime != nil {
			reminders[i].ReminderTime = *patch.ReminderTime
		}
		if patch.Priority != nil {
			reminders[i].Priority = *patch.Priority
		}
		if patch.Category != nil {
			reminders[i].Category = *patch.Category
		}
		if patch.IsRecurring != nil {
			reminders[i].IsRecurring = *patch.IsRecurring
		}
		if patch.RecurrenceType != nil {
			reminders[i].RecurrenceType = *patch.RecurrenceType
		}
		if patch.IsCompleted != nil {
			reminders[i].IsCompleted = *patch.IsCompleted
		}
		reminders[i].UpdatedAt = s.now().UTC().Format(time.RFC3339)

		if err := s.save(reminders); err != nil {
			return model.Reminder{}, err
		}
		return reminders[i], nil
	}
	return model.Reminder{}, ErrReminderNotFound
}

// Delete removes the reminder with the given id; absent ids are a no-op.
func (s *RemindersStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reminders := s.load()
	kept := reminders[:0]
	for _, r := range reminders {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	return s.save(kept)
}

// SeedIfEmpty populates illustrative sample reminders on first start.
func (s *RemindersStore) SeedIfEmpty() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.load()) > 0 {
		return nil
	}
	now := s.now()
	stamp := now.UTC().Format(time.RFC3339)
	return s.save([]model.Reminder{
		{
			ID:             "1",
			Title:          "Team standup meeting",
			Description:    "Daily standup with the development team",
			ReminderDate:   now.Format("2006-01-02"),
			ReminderTime:   "10:00",
			Priority:       model.PriorityHigh,
			Category:       "Work",
			IsRecurring:    true,
			RecurrenceType: model.RecurrenceDaily,
			CreatedAt:      stamp,
			UpdatedAt:      stamp,
		},
		{
			ID:           "2",
			Title:        "Doctor appointment",
			Description:  "Annual checkup with Dr. Smith",
			ReminderDate: now.AddDate(0, 0, 1).Format("2006-01-02"),
			ReminderTime: "14:30",
			Priority:     model.PriorityHigh,
			Category:     "Health",
			CreatedAt:    stamp,
			UpdatedAt:    stamp,
		},
	})
}
