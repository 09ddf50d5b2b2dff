package view

import (
	"sort"

	"todopro/internal/model"
)

// Group is one parent task with its ordered children, as rendered on the
// kanban board. Expanded is session-local UI state, never derived from data.
type Group struct {
	Parent   model.Task
	Children []model.Task
	Expanded bool
}

// Board maps each status column to its ordered task groups.
type Board map[model.Status][]Group

// boardColumns fixes the kanban column set and order.
var boardColumns = []model.Status{
	model.StatusPending,
	model.StatusInProgress,
	model.StatusCompleted,
}

// GroupBoard partitions tasks into parent/child groups per status column.
// Children sort ascending by order index (stable, so input order breaks ties).
// A child whose parent no longer exists is promoted into its own group under
// its own status, with parent_id cleared in the presentation copy only; it
// appears exactly once across all columns. Tasks missing id or title are
// ignored, as are tasks with a status outside the column set after defaulting.
func GroupBoard(tasks []model.Task, expanded map[string]bool) Board {
	valid := make([]model.Task, 0, len(tasks))
	byID := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if t.IsValidRecord() {
			valid = append(valid, t)
			byID[t.ID] = true
		}
	}

	board := Board{}
	for _, col := range boardColumns {
		board[col] = []Group{}
	}

	place := func(g Group) {
		status := g.Parent.StatusOrDefault()
		if _, ok := board[status]; ok {
			board[status] = append(board[status], g)
		}
	}

	for _, t := range valid {
		if t.ParentID != "" {
			continue
		}
		children := make([]model.Task, 0)
		for _, c := range valid {
			if c.ParentID == t.ID {
				children = append(children, c)
			}
		}
		sort.SliceStable(children, func(i, j int) bool {
			return children[i].OrderIndex < children[j].OrderIndex
		})
		place(Group{Parent: t, Children: children, Expanded: expanded[t.ID]})
	}

	// Orphaned children render as their own parent; the underlying record
	// keeps its parent_id.
	for _, t := range valid {
		if t.ParentID == "" || byID[t.ParentID] {
			continue
		}
		orphan := t
		orphan.ParentID = ""
		place(Group{Parent: orphan, Children: []model.Task{}})
	}

	return board
}

// NextOrderIndex returns the order index for a new child of parentID:
// one past the highest existing sibling index, treating "no siblings" as a
// maximum of zero.
func NextOrderIndex(tasks []model.Task, parentID string) int {
	max := 0
	for _, t := range tasks {
		if t.ParentID == parentID && t.OrderIndex > max {
			max = t.OrderIndex
		}
	}
	return max + 1
}
