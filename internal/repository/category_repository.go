package repository

import (
	"context"

	"gorm.io/gorm"

	"todopro/internal/model"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List retrieves all categories ordered by name
func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	result := r.db.WithContext(ctx).Order("name").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

// Seed inserts the default categories, skipping ones that already exist
func (r *CategoryRepository) Seed(ctx context.Context) error {
	for _, c := range model.DefaultCategories() {
		result := r.db.WithContext(ctx).
			Where(model.Category{ID: c.ID}).
			FirstOrCreate(&c)
		if result.Error != nil {
			return result.Error
		}
	}
	return nil
}
