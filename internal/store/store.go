package store

import (
	"context"
	"errors"
	"strings"
	"sync"

	"todopro/internal/model"
)

var (
	// ErrEmptyTitle rejects a create with a blank title before any store or
	// network work happens.
	ErrEmptyTitle = errors.New("title must not be empty")

	// ErrTaskNotFound is returned by Update and Delete for an unknown id.
	ErrTaskNotFound = errors.New("task not found")

	// ErrDeepNesting rejects a parent_id pointing at a task that itself has a
	// parent; the relation is one level only.
	ErrDeepNesting = errors.New("subtasks cannot have their own subtasks")
)

// Gateway persists mutations on behalf of the store. Implementations decide
// whether that means a remote call, a local synthesis, or a fallback chain.
type Gateway interface {
	List(ctx context.Context) ([]model.Task, error)
	Create(ctx context.Context, req model.CreateTaskRequest) (model.Task, error)
	Update(ctx context.Context, current model.Task, patch model.UpdateTaskRequest) (model.Task, error)
	Delete(ctx context.Context, id string) error
}

// Store owns the in-memory task collection. It is the single source of truth
// for rendering; the gateway keeps the backend in sync best-effort. Newly
// created tasks go to the front, so List is most-recent-first.
type Store struct {
	mu      sync.RWMutex
	gateway Gateway
	tasks   []model.Task
}

func New(gateway Gateway) *Store {
	return &Store{gateway: gateway}
}

// Load rehydrates the collection through the gateway. With a fallback gateway
// this never fails: a dead backend yields the built-in seed list.
func (s *Store) Load(ctx context.Context) error {
	tasks, err := s.gateway.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()
	return nil
}

// List returns a snapshot copy of the collection, most recent first.
func (s *Store) List() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, ErrTaskNotFound
}

// Create validates the draft, persists it through the gateway and prepends
// the confirmed (or synthesized) task to the collection.
func (s *Store) Create(ctx context.Context, req model.CreateTaskRequest) (model.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return model.Task{}, ErrEmptyTitle
	}
	if req.ParentID != "" {
		parent, err := s.Get(req.ParentID)
		if err == nil && parent.ParentID != "" {
			return model.Task{}, ErrDeepNesting
		}
	}

	task, err := s.gateway.Create(ctx, req)
	if err != nil {
		return model.Task{}, err
	}

	s.mu.Lock()
	s.tasks = append([]model.Task{task}, s.tasks...)
	s.mu.Unlock()
	return task, nil
}

// AddSubtask creates a child of parentID with the next order index among its
// siblings. The child starts pending regardless of the parent's status.
func (s *Store) AddSubtask(ctx context.Context, parentID, title string) (model.Task, error) {
	if _, err := s.Get(parentID); err != nil {
		return model.Task{}, err
	}
	return s.Create(ctx, model.CreateTaskRequest{
		Title:      title,
		Status:     model.StatusPending,
		ParentID:   parentID,
		OrderIndex: nextOrderIndex(s.List(), parentID),
	})
}

func nextOrderIndex(tasks []model.Task, parentID string) int {
	max := 0
	for _, t := range tasks {
		if t.ParentID == parentID && t.OrderIndex > max {
			max = t.OrderIndex
		}
	}
	return max + 1
}

// Update merges the patch into the task through the gateway and replaces the
// stored copy with the result. Unknown ids fail with ErrTaskNotFound.
func (s *Store) Update(ctx context.Context, id string, patch model.UpdateTaskRequest) (model.Task, error) {
	current, err := s.Get(id)
	if err != nil {
		return model.Task{}, err
	}
	if patch.ParentID != nil && *patch.ParentID != "" {
		parent, perr := s.Get(*patch.ParentID)
		if perr == nil && parent.ParentID != "" {
			return model.Task{}, ErrDeepNesting
		}
	}

	updated, err := s.gateway.Update(ctx, current, patch)
	if err != nil {
		return model.Task{}, err
	}

	s.mu.Lock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// Delete removes the task locally regardless of backend state: the local
// collection is the rendering source of truth, so a failed remote delete is
// still deemed successful. Children of the removed task become orphans; the
// grouping engine promotes them.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	// Best-effort: the fallback gateway swallows remote failures.
	err := s.gateway.Delete(ctx, id)

	s.mu.Lock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return err
}
