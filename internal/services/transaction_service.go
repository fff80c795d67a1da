package services

import (
	"moneyflow/internal/models"
	"moneyflow/internal/pagination"
	"moneyflow/internal/report"
	"moneyflow/internal/store"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	store *store.Store
}

// NewTransactionService creates a new TransactionServicer over the given store.
func NewTransactionService(s *store.Store) TransactionServicer {
	return &transactionService{store: s}
}

// CreateTransaction adds a new transaction. The store assigns the id,
// validates the category reference, and persists before returning.
func (s *transactionService) CreateTransaction(fields models.TransactionFields) (*models.Transaction, error) {
	return s.store.Add(fields)
}

// GetTransactions returns a page of transactions in insertion order,
// restricted to a calendar month when monthKey is set.
func (s *transactionService) GetTransactions(monthKey *string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	txs := s.store.List()

	if monthKey != nil {
		filtered, err := report.FilterByMonth(txs, *monthKey)
		if err != nil {
			return nil, err
		}
		txs = filtered
	}

	result := pagination.Paginate(txs, page)
	return &result, nil
}

// GetTransactionByID retrieves a single transaction.
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	return s.store.Get(id)
}

// UpdateTransaction replaces all fields of an existing transaction except its id.
func (s *transactionService) UpdateTransaction(id string, fields models.TransactionFields) (*models.Transaction, error) {
	return s.store.Update(id, fields)
}

// DeleteTransaction removes a transaction by id.
func (s *transactionService) DeleteTransaction(id string) error {
	return s.store.Delete(id)
}
