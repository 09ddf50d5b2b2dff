package model

// Category is read-mostly reference data used for labeling and filtering.
type Category struct {
	ID        string `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"uniqueIndex;not null"`
	Color     string `json:"color" gorm:"default:#0078d4"`
	CreatedAt string `json:"created_at"`
}

// DefaultCategories seeds the category table on first start.
func DefaultCategories() []Category {
	return []Category{
		{ID: "work", Name: "Work", Color: "#d13438"},
		{ID: "personal", Name: "Personal", Color: "#0078d4"},
		{ID: "health", Name: "Health", Color: "#107c10"},
		{ID: "finance", Name: "Finance", Color: "#8764b8"},
	}
}
