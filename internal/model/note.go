package model

// Note is freeform brainstorming content with its own lifecycle, persisted
// outside the task store. Field names keep the camelCase wire form the
// original storage used.
type Note struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Color     string   `json:"color"`
	IsPinned  bool     `json:"isPinned"`
	Labels    []string `json:"labels"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

type CreateNoteRequest struct {
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content"`
	Color    string   `json:"color"`
	IsPinned bool     `json:"isPinned"`
	Labels   []string `json:"labels"`
}

type UpdateNoteRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Color    *string   `json:"color"`
	IsPinned *bool     `json:"isPinned"`
	Labels   *[]string `json:"labels"`
}
