package models

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// DateLayout is the calendar-date layout used by Transaction.Date.
const DateLayout = "2006-01-02"

// Transaction represents a single recorded income or expense event.
// Amount is stored in minor currency units and carries no sign convention;
// Type alone determines how it contributes to the net balance. Date is a
// calendar date in YYYY-MM-DD form.
type Transaction struct {
	ID       string          `json:"id"`
	Amount   int64           `json:"amount"`
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
	Notes    string          `json:"notes,omitempty"`
}

// TransactionFields holds everything about a transaction except its ID.
// The store assigns IDs; callers never do.
type TransactionFields struct {
	Amount   int64
	Type     TransactionType
	Category string
	Date     string
	Notes    string
}
