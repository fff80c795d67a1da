package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "moneyflow/internal/errors"
	"moneyflow/internal/models"
	"moneyflow/internal/services"
)

// CategoryHandler exposes the static category registry.
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GetCategories lists categories, optionally filtered by ?type=income|expense.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	var typeFilter *models.TransactionType
	if v := c.Query("type"); v != "" {
		t := models.TransactionType(v)
		if !t.Valid() {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be income or expense"))
			return
		}
		typeFilter = &t
	}

	c.JSON(http.StatusOK, gin.H{"categories": h.categoryService.GetCategories(typeFilter)})
}

// GetCategoryByID retrieves a single category definition.
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	category, err := h.categoryService.GetCategoryByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}
