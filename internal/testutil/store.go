// Package testutil provides test helpers for setting up in-memory stores,
// creating fixtures, and making assertions.
package testutil

import (
	"errors"
	"sync"
	"testing"

	"moneyflow/internal/models"
	"moneyflow/internal/registry"
	"moneyflow/internal/storage"
	"moneyflow/internal/store"
)

// MemoryBackend is an in-memory storage.Backend. It counts writes so tests
// can assert the write-through behavior, and can be told to fail writes to
// exercise rollback paths.
type MemoryBackend struct {
	mu     sync.Mutex
	data   []byte
	exists bool

	Writes    int
	FailWrite bool
}

// NewMemoryBackend creates an empty memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Seed preloads the backend with a blob as if it had been persisted earlier.
func (b *MemoryBackend) Seed(data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = append([]byte(nil), data...)
	b.exists = true
}

// Read implements storage.Backend.
func (b *MemoryBackend) Read() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.exists {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), b.data...), nil
}

// Write implements storage.Backend.
func (b *MemoryBackend) Write(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailWrite {
		return errors.New("write failed")
	}
	b.data = append([]byte(nil), data...)
	b.exists = true
	b.Writes++
	return nil
}

// SetupTestStore creates a store over a fresh memory backend and the
// default category registry.
func SetupTestStore(t *testing.T) (*store.Store, *MemoryBackend) {
	t.Helper()

	backend := NewMemoryBackend()
	s, err := store.New(backend, registry.NewDefault())
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	return s, backend
}

// IncomeFields returns valid income transaction fields for the given
// amount and date, using the salary category.
func IncomeFields(amount int64, date string) models.TransactionFields {
	return models.TransactionFields{
		Amount:   amount,
		Type:     models.TransactionTypeIncome,
		Category: "salary",
		Date:     date,
	}
}

// ExpenseFields returns valid expense transaction fields for the given
// amount and date, using the rent category.
func ExpenseFields(amount int64, date string) models.TransactionFields {
	return models.TransactionFields{
		Amount:   amount,
		Type:     models.TransactionTypeExpense,
		Category: "rent",
		Date:     date,
	}
}

// CreateTestTransaction adds a transaction to the store and fails the test
// on error.
func CreateTestTransaction(t *testing.T, s *store.Store, fields models.TransactionFields) *models.Transaction {
	t.Helper()

	tx, err := s.Add(fields)
	if err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}
