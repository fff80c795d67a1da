// Package store owns the in-memory transaction collection and its
// write-through persistence. Every mutation re-serializes the whole
// collection to the configured backend before returning; at this data
// scale durability beats batching.
package store

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	apperrors "moneyflow/internal/errors"
	"moneyflow/internal/logger"
	"moneyflow/internal/models"
	"moneyflow/internal/registry"
	"moneyflow/internal/storage"
	"moneyflow/internal/uuid"
)

// schemaVersion tags the persisted envelope so future field changes can
// migrate old snapshots instead of failing silently.
const schemaVersion = 1

// envelope is the persisted form of the ledger.
type envelope struct {
	Version      int                  `json:"version"`
	Transactions []models.Transaction `json:"transactions"`
}

// Store holds the ordered transaction collection. All reads hand out
// copies; callers never alias store memory. The mutex exists because the
// HTTP server handles requests concurrently; each mutation and its
// write-through persist run under the write lock, so a subsequent read
// always observes a fully applied mutation.
type Store struct {
	mu      sync.RWMutex
	backend storage.Backend
	reg     *registry.Registry
	log     *zap.SugaredLogger

	txs   []models.Transaction
	index map[string]int // id -> position in txs
}

// New loads the persisted ledger from the backend and builds the store.
// A backend with no data yields an empty collection. A corrupt blob fails
// closed: the store starts empty and logs a warning, rather than refusing
// to start.
func New(backend storage.Backend, reg *registry.Registry) (*Store, error) {
	s := &Store{
		backend: backend,
		reg:     reg,
		log:     logger.Named("store"),
		index:   make(map[string]int),
	}

	data, err := backend.Read()
	if err != nil {
		if err == storage.ErrNotFound {
			return s, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	for _, tx := range s.decode(data) {
		if _, dup := s.index[tx.ID]; dup {
			s.log.Warnw("dropping transaction with duplicate id", "id", tx.ID)
			continue
		}
		s.index[tx.ID] = len(s.txs)
		s.txs = append(s.txs, tx)
	}
	return s, nil
}

// decode parses a persisted blob. It accepts the current versioned
// envelope and, for compatibility with snapshots written before
// versioning, a bare transaction array; the legacy form is rewritten as a
// versioned envelope on the next mutation. Anything else is treated as
// corrupt and yields an empty collection.
func (s *Store) decode(data []byte) []models.Transaction {
	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Version != 0 {
		if env.Version != schemaVersion {
			s.log.Warnw("unsupported ledger schema version, starting empty",
				"version", env.Version, "supported", schemaVersion)
			return nil
		}
		return env.Transactions
	}

	var legacy []models.Transaction
	if err := json.Unmarshal(data, &legacy); err == nil {
		s.log.Infow("loaded legacy unversioned ledger", "transactions", len(legacy))
		return legacy
	}

	s.log.Warnw("corrupt ledger snapshot, starting empty", "bytes", len(data))
	return nil
}

// validate checks the category reference and its allowed transaction type.
// Enforced at write time so the collection can never hold a salary expense.
// Amount sign and date format remain caller responsibility.
func (s *Store) validate(fields models.TransactionFields) error {
	if !fields.Type.Valid() {
		return apperrors.ErrInvalidTransactionType
	}
	cat, ok := s.reg.Lookup(fields.Category)
	if !ok {
		return apperrors.WithMessage(apperrors.ErrCategoryNotFound, "Unknown category: "+fields.Category)
	}
	if cat.Type != fields.Type {
		return apperrors.WithMessage(apperrors.ErrCategoryTypeMismatch,
			"Category "+cat.ID+" only allows "+string(cat.Type)+" transactions")
	}
	return nil
}

// persist serializes the whole collection to the backend. Called with the
// write lock held.
func (s *Store) persist() error {
	data, err := json.Marshal(envelope{Version: schemaVersion, Transactions: s.txs})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.backend.Write(data); err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

// Add creates a transaction with a fresh unique id, appends it, persists,
// and returns the created record. When the persist fails the append is
// rolled back so memory and backend never diverge.
func (s *Store) Add(fields models.TransactionFields) (*models.Transaction, error) {
	if err := s.validate(fields); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	for _, taken := s.index[id]; taken; _, taken = s.index[id] {
		id = uuid.New()
	}

	tx := models.Transaction{
		ID:       id,
		Amount:   fields.Amount,
		Type:     fields.Type,
		Category: fields.Category,
		Date:     fields.Date,
		Notes:    fields.Notes,
	}
	s.index[id] = len(s.txs)
	s.txs = append(s.txs, tx)

	if err := s.persist(); err != nil {
		s.txs = s.txs[:len(s.txs)-1]
		delete(s.index, id)
		return nil, err
	}
	return &tx, nil
}

// Update replaces every field of the transaction except its id, then
// persists. Returns ErrTransactionNotFound for an absent id rather than
// treating it as a no-op.
func (s *Store) Update(id string, fields models.TransactionFields) (*models.Transaction, error) {
	if err := s.validate(fields); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return nil, apperrors.ErrTransactionNotFound
	}

	prev := s.txs[pos]
	s.txs[pos] = models.Transaction{
		ID:       id,
		Amount:   fields.Amount,
		Type:     fields.Type,
		Category: fields.Category,
		Date:     fields.Date,
		Notes:    fields.Notes,
	}

	if err := s.persist(); err != nil {
		s.txs[pos] = prev
		return nil, err
	}
	tx := s.txs[pos]
	return &tx, nil
}

// Delete removes the transaction with the given id and persists. Returns
// ErrTransactionNotFound for an absent id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return apperrors.ErrTransactionNotFound
	}

	removed := s.txs[pos]
	s.txs = append(s.txs[:pos], s.txs[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.txs); i++ {
		s.index[s.txs[i].ID] = i
	}

	if err := s.persist(); err != nil {
		s.txs = append(s.txs[:pos], append([]models.Transaction{removed}, s.txs[pos:]...)...)
		for i := pos; i < len(s.txs); i++ {
			s.index[s.txs[i].ID] = i
		}
		return err
	}
	return nil
}

// Get returns a copy of the transaction with the given id.
func (s *Store) Get(id string) (*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return nil, apperrors.ErrTransactionNotFound
	}
	tx := s.txs[pos]
	return &tx, nil
}

// List returns a copy of the full collection in insertion order.
func (s *Store) List() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}
