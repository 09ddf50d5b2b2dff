// Package localstore persists notes and reminders as JSON documents on disk.
// They live outside the task store and backend entirely; the dashboard only
// reads them as display data.
package localstore

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"todopro/internal/model"
)

var (
	// ErrNoteNotFound is returned when a note is not found
	ErrNoteNotFound = errors.New("note not found")

	// ErrReminderNotFound is returned when a reminder is not found
	ErrReminderNotFound = errors.New("reminder not found")
)

const defaultNoteColor = "#ffffff"

type NotesStore struct {
	path string
	mu   sync.Mutex

	// Now is the clock used for ids and timestamps; defaults to time.Now.
	Now func() time.Time
}

func NewNotesStore(dir string) *NotesStore {
	return &NotesStore{path: filepath.Join(dir, "notes.json"), Now: time.Now}
}

func (s *NotesStore) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// load reads the stored notes. A missing or corrupted file yields an empty
// list rather than an error; storage problems must not break the views.
func (s *NotesStore) load() []model.Note {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return []model.Note{}
	}
	var notes []model.Note
	if err := json.Unmarshal(raw, &notes); err != nil {
		log.Printf("⚠️ Corrupted notes storage, starting empty: %v", err)
		return []model.Note{}
	}
	return notes
}

func (s *NotesStore) save(notes []model.Note) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

// LoadAll returns every stored note, most recently created first.
func (s *NotesStore) LoadAll() ([]model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

// Create stores a new note at the front of the list.
func (s *NotesStore) Create(req model.CreateNoteRequest) (model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	stamp := now.UTC().Format(time.RFC3339)
	note := model.Note{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Title:     req.Title,
		Content:   req.Content,
		Color:     req.Color,
		IsPinned:  req.IsPinned,
		Labels:    req.Labels,
		CreatedAt: stamp,
		UpdatedAt: stamp,
	}
	if note.Color == "" {
		note.Color = defaultNoteColor
	}
	if note.Labels == nil {
		note.Labels = []string{}
	}

	notes := append([]model.Note{note}, s.load()...)
	if err := s.save(notes); err != nil {
		return model.Note{}, err
	}
	return note, nil
}

// Update merges a partial patch into the note with the given id.
func (s *NotesStore) Update(id string, patch model.UpdateNoteRequest) (model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := s.load()
	for i := range notes {
		if notes[i].ID != id {
			continue
		}
		if patch.Title != nil {
			notes[i].Title = *patch.Title
		}
		if patch.Content != nil {
			notes[i].Content = *patch.Content
		}
		if patch.Color != nil {
			notes[i].Color = *patch.Color
		}
		if patch.IsPinned != nil {
			notes[i].IsPinned = *patch.IsPinned
		}
		if patch.Labels != nil {
			notes[i].Labels = *patch.Labels
		}
		notes[i].UpdatedAt = s.now().UTC().Format(time.RFC3339)

		if err := s.save(notes); err != nil {
			return model.Note{}, err
		}
		return notes[i], nil
	}
	return model.Note{}, ErrNoteNotFound
}

// Delete removes the note with the given id; deleting an absent id is a no-op.
func (s *NotesStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := s.load()
	kept := notes[:0]
	for _, n := range notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	return s.save(kept)
}

// SeedIfEmpty populates illustrative sample notes on first start.
func (s *NotesStore) SeedIfEmpty() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.load()) > 0 {
		return nil
	}
	stamp := s.now().UTC().Format(time.RFC3339)
	return s.save([]model.Note{
		{
			ID:        "1",
			Title:     "Project Ideas",
			Content:   "Build a task manager\nCreate a weather app\nDevelop a music player\nDesign a portfolio website",
			Color:     "#f3f9f1",
			IsPinned:  true,
			Labels:    []string{"development", "ideas"},
			CreatedAt: stamp,
			UpdatedAt: stamp,
		},
		{
			ID:        "2",
			Title:     "Meeting Notes",
			Content:   "Discussed Q4 goals\n- Increase productivity by 20%\n- Launch new feature\n- Improve user experience",
			Color:     "#e6f7ff",
			IsPinned:  false,
			Labels:    []string{"work", "meetings"},
			CreatedAt: stamp,
			UpdatedAt: stamp,
		},
	})
}
