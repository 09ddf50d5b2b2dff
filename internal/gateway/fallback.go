package gateway

import (
	"context"
	"log"

	"todopro/internal/model"
)

// Strategy is one way of persisting task mutations. Remote and Local both
// implement it.
type Strategy interface {
	List(ctx context.Context) ([]model.Task, error)
	Create(ctx context.Context, req model.CreateTaskRequest) (model.Task, error)
	Update(ctx context.Context, current model.Task, patch model.UpdateTaskRequest) (model.Task, error)
	Delete(ctx context.Context, id string) error
}

// Fallback tries the remote strategy first and silently degrades to the
// local one on any remote failure. The degraded mode is invisible to the
// caller but never to telemetry: every fallback is logged with its cause.
type Fallback struct {
	remote Strategy
	local  Strategy
	logf   func(format string, args ...any)
}

func NewFallback(remote, local Strategy) *Fallback {
	return &Fallback{remote: remote, local: local, logf: log.Printf}
}

func (f *Fallback) List(ctx context.Context) ([]model.Task, error) {
	tasks, err := f.remote.List(ctx)
	if err != nil {
		f.logf("⚠️ Remote list failed, using seed data: %v", err)
		return f.local.List(ctx)
	}
	return tasks, nil
}

func (f *Fallback) Create(ctx context.Context, req model.CreateTaskRequest) (model.Task, error) {
	task, err := f.remote.Create(ctx, req)
	if err != nil {
		f.logf("⚠️ Remote create failed, synthesizing task locally: %v", err)
		return f.local.Create(ctx, req)
	}
	return task, nil
}

func (f *Fallback) Update(ctx context.Context, current model.Task, patch model.UpdateTaskRequest) (model.Task, error) {
	task, err := f.remote.Update(ctx, current, patch)
	if err != nil {
		f.logf("⚠️ Remote update failed, applying patch locally: %v", err)
		return f.local.Update(ctx, current, patch)
	}
	return task, nil
}

// Delete never fails: when the remote is unreachable the task is simply
// removed locally, and the local collection is what renders.
func (f *Fallback) Delete(ctx context.Context, id string) error {
	if err := f.remote.Delete(ctx, id); err != nil {
		f.logf("⚠️ Remote delete failed, removing locally anyway: %v", err)
		return f.local.Delete(ctx, id)
	}
	return nil
}
