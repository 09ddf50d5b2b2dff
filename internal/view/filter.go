package view

import (
	"strings"

	"todopro/internal/model"
)

// FilterAll is accepted for priority/status to mean "no filter", alongside the
// empty string.
const FilterAll = "all"

// Filter narrows a task list before any bucketing, grouping or aggregation.
// Conditions compose with logical AND.
type Filter struct {
	Search   string
	Priority string
	Status   string
}

// ApplyFilter returns the tasks matching the filter, preserving input order.
// Search matches case-insensitively against title or description.
func ApplyFilter(tasks []model.Task, f Filter) []model.Task {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		if f.Priority != "" && f.Priority != FilterAll && string(t.Priority) != f.Priority {
			continue
		}
		if f.Status != "" && f.Status != FilterAll && string(t.Status) != f.Status {
			continue
		}
		out = append(out, t)
	}
	return out
}
