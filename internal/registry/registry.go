// Package registry holds the static category registry. Categories are fixed
// at process start; there is no mutation API and nothing is persisted.
package registry

import "moneyflow/internal/models"

// Registry maps category ids to their definitions while preserving the
// declaration order for listing.
type Registry struct {
	ordered []models.Category
	byID    map[string]models.Category
}

// defaultCategories is the built-in category set.
var defaultCategories = []models.Category{
	{ID: "salary", Name: "Salary", Type: models.TransactionTypeIncome},
	{ID: "investment", Name: "Investment", Type: models.TransactionTypeIncome},
	{ID: "freelance", Name: "Freelance", Type: models.TransactionTypeIncome},
	{ID: "other-income", Name: "Other Income", Type: models.TransactionTypeIncome},
	{ID: "rent", Name: "Rent", Type: models.TransactionTypeExpense},
	{ID: "groceries", Name: "Groceries", Type: models.TransactionTypeExpense},
	{ID: "bills", Name: "Bills", Type: models.TransactionTypeExpense},
	{ID: "entertainment", Name: "Entertainment", Type: models.TransactionTypeExpense},
	{ID: "transport", Name: "Transport", Type: models.TransactionTypeExpense},
	{ID: "other-expense", Name: "Other Expense", Type: models.TransactionTypeExpense},
}

// New creates a registry with the given categories. Later duplicates of an
// id are ignored; the first definition wins.
func New(categories []models.Category) *Registry {
	r := &Registry{
		ordered: make([]models.Category, 0, len(categories)),
		byID:    make(map[string]models.Category, len(categories)),
	}
	for _, c := range categories {
		if _, exists := r.byID[c.ID]; exists {
			continue
		}
		r.byID[c.ID] = c
		r.ordered = append(r.ordered, c)
	}
	return r
}

// NewDefault creates a registry with the built-in category set.
func NewDefault() *Registry {
	return New(defaultCategories)
}

// Lookup returns the category with the given id.
func (r *Registry) Lookup(id string) (models.Category, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// DisplayName returns the category's display name, falling back to the raw
// id when the id is unknown. Unknown references degrade in display, they
// are not an error.
func (r *Registry) DisplayName(id string) string {
	if c, ok := r.byID[id]; ok {
		return c.Name
	}
	return id
}

// All returns every category in declaration order.
func (r *Registry) All() []models.Category {
	out := make([]models.Category, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// ByType returns the categories allowing the given transaction type, in
// declaration order.
func (r *Registry) ByType(t models.TransactionType) []models.Category {
	var out []models.Category
	for _, c := range r.ordered {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}
