package view_test

import (
	"testing"

	"todopro/internal/model"
	"todopro/internal/view"

	"github.com/stretchr/testify/assert"
)

func filterFixture() []model.Task {
	return []model.Task{
		{ID: "1", Title: "Write report", Description: "quarterly numbers", Priority: model.PriorityHigh, Status: model.StatusPending},
		{ID: "2", Title: "Buy groceries", Description: "milk and eggs", Priority: model.PriorityLow, Status: model.StatusCompleted},
		{ID: "3", Title: "Plan sprint", Description: "REPORT to the team", Priority: model.PriorityHigh, Status: model.StatusInProgress},
	}
}

func TestApplyFilter_SearchMatchesTitleOrDescription(t *testing.T) {
	tasks := filterFixture()

	got := view.ApplyFilter(tasks, view.Filter{Search: "report"})

	assert.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestApplyFilter_CaseInsensitive(t *testing.T) {
	tasks := filterFixture()

	got := view.ApplyFilter(tasks, view.Filter{Search: "GROCERIES"})

	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestApplyFilter_PriorityAndStatusCompose(t *testing.T) {
	tasks := filterFixture()

	got := view.ApplyFilter(tasks, view.Filter{Priority: "high", Status: "pending"})

	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestApplyFilter_AllIsNoOp(t *testing.T) {
	tasks := filterFixture()

	got := view.ApplyFilter(tasks, view.Filter{Priority: view.FilterAll, Status: view.FilterAll})

	assert.Len(t, got, 3)
}

func TestApplyFilter_EmptyFilterKeepsOrder(t *testing.T) {
	tasks := filterFixture()

	got := view.ApplyFilter(tasks, view.Filter{})

	assert.Equal(t, tasks, got)
}
