package session

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-memdb"
)

const (
	tableSession = "session"
	indexID      = "id"
)

// record is the row stored per session. Rows are treated as immutable once
// inserted; touching a session inserts an updated copy.
type record struct {
	ID           string
	CreatedAt    time.Time
	LastAccessed time.Time
	Session      *Session
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableSession: {
				Name: tableSession,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
				},
			},
		},
	}
}

// Store is the session table.
type Store struct {
	db *memdb.MemDB
}

func NewStore() (*Store, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Insert(r *record) error {
	txn := s.db.Txn(true)
	defer txn.Abort()
	if err := txn.Insert(tableSession, r); err != nil {
		return fmt.Errorf("failed to insert session %s: %w", r.ID, err)
	}
	txn.Commit()
	return nil
}

func (s *Store) Get(id string) (*record, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()
	raw, err := txn.First(tableSession, indexID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up session %s: %w", id, err)
	}
	if raw == nil {
		return nil, ErrSessionNotFound
	}
	return raw.(*record), nil
}

// Touch records an access at the given time.
func (s *Store) Touch(id string, at time.Time) (*record, error) {
	txn := s.db.Txn(true)
	defer txn.Abort()
	raw, err := txn.First(tableSession, indexID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up session %s: %w", id, err)
	}
	if raw == nil {
		return nil, ErrSessionNotFound
	}
	updated := *raw.(*record)
	updated.LastAccessed = at
	if err := txn.Insert(tableSession, &updated); err != nil {
		return nil, fmt.Errorf("failed to touch session %s: %w", id, err)
	}
	txn.Commit()
	return &updated, nil
}

func (s *Store) Delete(id string) error {
	txn := s.db.Txn(true)
	defer txn.Abort()
	n, err := txn.DeleteAll(tableSession, indexID, id)
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	txn.Commit()
	return nil
}

// DeleteIdleSince removes every session last accessed before cutoff and
// returns their ids.
func (s *Store) DeleteIdleSince(cutoff time.Time) ([]string, error) {
	txn := s.db.Txn(true)
	defer txn.Abort()

	it, err := txn.Get(tableSession, indexID)
	if err != nil {
		return nil, fmt.Errorf("failed to scan sessions: %w", err)
	}
	var stale []*record
	for raw := it.Next(); raw != nil; raw = it.Next() {
		r := raw.(*record)
		if r.LastAccessed.Before(cutoff) {
			stale = append(stale, r)
		}
	}

	ids := make([]string, 0, len(stale))
	for _, r := range stale {
		if err := txn.Delete(tableSession, r); err != nil {
			return nil, fmt.Errorf("failed to delete session %s: %w", r.ID, err)
		}
		ids = append(ids, r.ID)
	}
	txn.Commit()
	return ids, nil
}

func (s *Store) Count() (int, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()
	it, err := txn.Get(tableSession, indexID)
	if err != nil {
		return 0, fmt.Errorf("failed to scan sessions: %w", err)
	}
	n := 0
	for raw := it.Next(); raw != nil; raw = it.Next() {
		n++
	}
	return n, nil
}
