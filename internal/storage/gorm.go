package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// snapshotKey is the single row key the ledger blob lives under.
const snapshotKey = "transactions"

// LedgerSnapshot is the row model for the ledger_snapshots table. One row
// per key; the whole serialized ledger lives in Payload.
type LedgerSnapshot struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Payload   []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName maps the model to the migrated table.
func (LedgerSnapshot) TableName() string { return "ledger_snapshots" }

// GormBackend persists the ledger blob in a single-row key/value table
// through GORM. Used with the PostgreSQL driver in production and the
// SQLite driver in tests.
type GormBackend struct {
	db *gorm.DB
}

// NewGormBackend creates a backend over an already-open GORM connection.
func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

// Read returns the persisted blob, or ErrNotFound when the snapshot row
// has never been written.
func (b *GormBackend) Read() ([]byte, error) {
	var snap LedgerSnapshot
	if err := b.db.Where("key = ?", snapshotKey).First(&snap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: read snapshot: %w", err)
	}
	return snap.Payload, nil
}

// Write upserts the snapshot row with the new blob.
func (b *GormBackend) Write(data []byte) error {
	snap := LedgerSnapshot{
		Key:       snapshotKey,
		Payload:   data,
		UpdatedAt: time.Now(),
	}
	err := b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&snap).Error
	if err != nil {
		return fmt.Errorf("storage: write snapshot: %w", err)
	}
	return nil
}
