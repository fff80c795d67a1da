package services

import (
	apperrors "moneyflow/internal/errors"
	"moneyflow/internal/models"
	"moneyflow/internal/registry"
)

// categoryService exposes the static category registry.
type categoryService struct {
	registry *registry.Registry
}

// NewCategoryService creates a new CategoryServicer over the given registry.
func NewCategoryService(reg *registry.Registry) CategoryServicer {
	return &categoryService{registry: reg}
}

// GetCategories lists categories in declaration order, optionally
// restricted to one transaction type for the form's category picker.
func (s *categoryService) GetCategories(typeFilter *models.TransactionType) []models.Category {
	if typeFilter != nil {
		return s.registry.ByType(*typeFilter)
	}
	return s.registry.All()
}

// GetCategoryByID retrieves a category by id.
func (s *categoryService) GetCategoryByID(id string) (*models.Category, error) {
	cat, ok := s.registry.Lookup(id)
	if !ok {
		return nil, apperrors.ErrCategoryNotFound
	}
	return &cat, nil
}
