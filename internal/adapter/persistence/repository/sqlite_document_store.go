package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"mixto_gestao/internal/usecase/interfaces"
)

const sqliteSchemaSQL = `
CREATE TABLE IF NOT EXISTS documents (
    key        TEXT PRIMARY KEY,
    payload    BLOB NOT NULL,
    updated_at TEXT NOT NULL
);
`

// SQLiteDocumentStore keeps documents in a single SQLite table.
type SQLiteDocumentStore struct {
	db *sql.DB
}

var _ interfaces.IDocumentStore = (*SQLiteDocumentStore)(nil)

// NewSQLiteDocumentStore creates the documents table when missing.
func NewSQLiteDocumentStore(db *sql.DB) (*SQLiteDocumentStore, error) {
	if _, err := db.Exec(sqliteSchemaSQL); err != nil {
		return nil, err
	}
	return &SQLiteDocumentStore{db: db}, nil
}

func (s *SQLiteDocumentStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, "SELECT payload FROM documents WHERE key = ?", key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (s *SQLiteDocumentStore) Put(ctx context.Context, key string, payload []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, `
INSERT INTO documents (key, payload, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		key, payload, now)
	return err
}
