// Package storage provides the persistence backends for the transaction
// ledger. A backend is a single-key blob store: the store serializes the
// whole collection and writes it through on every mutation.
package storage

import "errors"

// ErrNotFound is returned by Read when nothing has been persisted yet.
// Callers treat it as an empty ledger, not a failure.
var ErrNotFound = errors.New("storage: no persisted ledger")

// Backend reads and writes the serialized ledger blob. Write must be
// atomic enough that a reader never observes a partially written blob.
type Backend interface {
	Read() ([]byte, error)
	Write(data []byte) error
}
