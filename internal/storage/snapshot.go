package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"slides/internal/domain"
)

// presentationsKey is the single documents-table key holding the JSON
// array of every presentation. Timestamps serialize as RFC 3339 strings
// and revive to time.Time on load.
const presentationsKey = "presentations"

// SnapshotStore persists the full presentation collection as one JSON
// document. It implements store.Persister.
type SnapshotStore struct {
	db *DB
}

// NewSnapshotStore creates a SnapshotStore.
func NewSnapshotStore(db *DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// SavePresentations serializes the collection and upserts it under the
// presentations key. Called after every successful mutation.
func (s *SnapshotStore) SavePresentations(presentations []domain.Presentation) error {
	data, err := json.Marshal(presentations)
	if err != nil {
		return fmt.Errorf("marshal presentations: %w", err)
	}
	_, err = s.db.conn.Exec(
		`INSERT INTO documents (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		presentationsKey, string(data), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("save presentations: %w", err)
	}
	return nil
}

// LoadPresentations reads the stored collection. A missing row yields an
// empty collection; corrupt data is logged and discarded rather than
// surfaced, so a damaged snapshot never blocks startup.
func (s *SnapshotStore) LoadPresentations() ([]domain.Presentation, error) {
	var value string
	err := s.db.conn.QueryRow(
		`SELECT value FROM documents WHERE key = ?`, presentationsKey,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load presentations: %w", err)
	}

	var presentations []domain.Presentation
	if err := json.Unmarshal([]byte(value), &presentations); err != nil {
		log.Printf("storage: corrupt presentations snapshot, starting empty: %v", err)
		return nil, nil
	}
	return presentations, nil
}
