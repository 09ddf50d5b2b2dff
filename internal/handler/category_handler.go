package handler

import (
	"context"
	"net/http"

	"todopro/internal/model"

	"github.com/gin-gonic/gin"
)

// CategoryRepository is the storage surface the category handler needs.
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
}

type CategoryHandler struct {
	repo CategoryRepository
}

func NewCategoryHandler(repo CategoryRepository) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

// GetAll returns every category ordered by name
func (h *CategoryHandler) GetAll(c *gin.Context) {
	categories, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}
