package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"todopro/internal/model"

	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestRemote_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/todos", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"id":"1","title":"a"},{"id":"2","title":"b"}]`)
	}))
	defer srv.Close()

	tasks, err := NewRemote(srv.URL + "/api").List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, "a", tasks[0].Title)
}

func TestRemote_CreateSendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":"abc","title":"fresh","priority":"medium","status":"pending"}`)
	}))
	defer srv.Close()

	task, err := NewRemote(srv.URL+"/api").Create(context.Background(), model.CreateTaskRequest{Title: "fresh"})

	assert.NoError(t, err)
	assert.Equal(t, "abc", task.ID)
	assert.Equal(t, model.PriorityMedium, task.Priority)
}

func TestRemote_ServerErrorWrapsSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":"database down"}`)
	}))
	defer srv.Close()

	_, err := NewRemote(srv.URL + "/api").List(context.Background())

	assert.ErrorIs(t, err, ErrRemoteUnavailable)
	assert.Contains(t, err.Error(), "database down")
}

func TestRemote_UnreachableHostWrapsSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewRemote(srv.URL + "/api").List(context.Background())

	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}

func TestRemote_Delete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/todos/42", r.URL.Path)
		fmt.Fprint(w, `{"deleted":true}`)
	}))
	defer srv.Close()

	err := NewRemote(srv.URL+"/api").Delete(context.Background(), "42")

	assert.NoError(t, err)
}

func TestLocal_CreateSynthesizesTask(t *testing.T) {
	local := &Local{Now: fixedClock}

	task, err := local.Create(context.Background(), model.CreateTaskRequest{Title: "offline task"})

	assert.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(fixedNow.UnixMilli(), 10), task.ID)
	assert.Equal(t, "offline task", task.Title)
	assert.Equal(t, model.PriorityMedium, task.Priority)
	assert.Equal(t, model.StatusPending, task.Status)
	assert.Equal(t, model.DefaultCategory, task.Category)
	assert.Equal(t, fixedNow.Format(time.RFC3339), task.CreatedAt)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
}

func TestLocal_CreateKeepsExplicitFields(t *testing.T) {
	local := &Local{Now: fixedClock}

	task, err := local.Create(context.Background(), model.CreateTaskRequest{
		Title:    "child",
		Priority: model.PriorityHigh,
		Status:   model.StatusInProgress,
		Category: "Work",
		ParentID: "p1",
	})

	assert.NoError(t, err)
	assert.Equal(t, model.PriorityHigh, task.Priority)
	assert.Equal(t, model.StatusInProgress, task.Status)
	assert.Equal(t, "Work", task.Category)
	assert.Equal(t, "p1", task.ParentID)
}

func TestLocal_UpdateStampsCompletedAtOnce(t *testing.T) {
	local := &Local{Now: fixedClock}
	current := model.Task{ID: "1", Title: "a", Status: model.StatusPending}
	completed := model.StatusCompleted

	first, err := local.Update(context.Background(), current, model.UpdateTaskRequest{Status: &completed})
	assert.NoError(t, err)
	assert.Equal(t, fixedNow.UTC().Format(time.RFC3339), first.CompletedAt)

	// Completing again, or reopening, never clears the stamp.
	pending := model.StatusPending
	reopened, err := local.Update(context.Background(), first, model.UpdateTaskRequest{Status: &pending})
	assert.NoError(t, err)
	assert.Equal(t, first.CompletedAt, reopened.CompletedAt)
}

func TestLocal_SeedTasksAreValid(t *testing.T) {
	seed := SeedTasks()

	assert.Len(t, seed, 3)
	for _, task := range seed {
		assert.True(t, task.IsValidRecord())
	}
}

func TestFallback_CreateDegradesToLocal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	var logged []string
	fb := NewFallback(NewRemote(srv.URL+"/api"), &Local{Now: fixedClock})
	fb.logf = func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}

	task, err := fb.Create(context.Background(), model.CreateTaskRequest{Title: "offline"})

	assert.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(fixedNow.UnixMilli(), 10), task.ID)
	assert.Len(t, logged, 1)
	assert.Contains(t, logged[0], "Remote create failed")
}

func TestFallback_ListDegradesToSeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	fb := NewFallback(NewRemote(srv.URL+"/api"), NewLocal())
	fb.logf = func(format string, args ...any) {}

	tasks, err := fb.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, tasks, 3)
	assert.Equal(t, "Complete project setup", tasks[0].Title)
}

func TestFallback_PrefersRemoteWhenHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id":"r1","title":"from server"}]`)
	}))
	defer srv.Close()

	var logged []string
	fb := NewFallback(NewRemote(srv.URL+"/api"), NewLocal())
	fb.logf = func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}

	tasks, err := fb.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, "from server", tasks[0].Title)
	assert.Empty(t, logged)
}

func TestFallback_DeleteNeverFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	fb := NewFallback(NewRemote(srv.URL+"/api"), NewLocal())
	fb.logf = func(format string, args ...any) {}

	assert.NoError(t, fb.Delete(context.Background(), "1"))
}
