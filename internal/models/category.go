package models

// Category represents a named grouping for transactions. A category only
// ever applies to one transaction type: salary is income, rent is expense.
type Category struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Type TransactionType `json:"type"`
}
