package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"todopro/internal/model"
)

// ErrRemoteUnavailable covers every remote failure mode alike: transport
// errors, non-2xx responses and malformed bodies. Callers composing a
// fallback treat them identically.
var ErrRemoteUnavailable = errors.New("remote API unavailable")

// defaultTimeout bounds every remote call; an unreachable backend must fail
// fast enough for the fallback strategy to keep the UI responsive.
const defaultTimeout = 10 * time.Second

// Remote talks to the task REST backend.
type Remote struct {
	baseURL string
	client  *http.Client
}

// NewRemote returns a remote strategy for the API at baseURL, e.g.
// "http://localhost:8080/api".
func NewRemote(baseURL string) *Remote {
	return &Remote{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

type apiError struct {
	Error string `json:"error"`
}

// do performs a request and decodes the response into out (when non-nil).
// Any failure is wrapped in ErrRemoteUnavailable.
func (r *Remote) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encode request: %v", ErrRemoteUnavailable, err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error != "" {
			return fmt.Errorf("%w: %s (%d)", ErrRemoteUnavailable, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%w: status %d", ErrRemoteUnavailable, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode response: %v", ErrRemoteUnavailable, err)
		}
	}
	return nil
}

func (r *Remote) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.do(ctx, http.MethodGet, "/todos", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *Remote) Get(ctx context.Context, id string) (model.Task, error) {
	var task model.Task
	if err := r.do(ctx, http.MethodGet, "/todos/"+id, nil, &task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (r *Remote) Create(ctx context.Context, req model.CreateTaskRequest) (model.Task, error) {
	var task model.Task
	if err := r.do(ctx, http.MethodPost, "/todos", req, &task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (r *Remote) Update(ctx context.Context, current model.Task, patch model.UpdateTaskRequest) (model.Task, error) {
	var task model.Task
	if err := r.do(ctx, http.MethodPut, "/todos/"+current.ID, patch, &task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (r *Remote) Delete(ctx context.Context, id string) error {
	var result struct {
		Deleted bool `json:"deleted"`
	}
	return r.do(ctx, http.MethodDelete, "/todos/"+id, nil, &result)
}

// ByDateRange fetches tasks with a due date between the bounds, inclusive.
func (r *Remote) ByDateRange(ctx context.Context, start, end string) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.do(ctx, http.MethodGet, "/todos/range/"+start+"/"+end, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *Remote) Categories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *Remote) Stats(ctx context.Context) ([]model.StatRow, error) {
	var rows []model.StatRow
	if err := r.do(ctx, http.MethodGet, "/stats", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
