package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// newPostgresDialectDB runs the postgres dialect over an in-process SQLite
// connection, which accepts the same $N placeholders and ON CONFLICT upsert.
func newPostgresDialectDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "documents.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if _, err := sqlDB.Exec(`CREATE TABLE documents (key TEXT PRIMARY KEY, payload TEXT NOT NULL, updated_at DATETIME)`); err != nil {
		t.Fatalf("schema: %v", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return db
}

func TestPostgresDocumentStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key is not found", func(t *testing.T) {
		store := NewPostgresDocumentStore(newPostgresDialectDB(t))
		got, found, err := store.Get(ctx, "mixto_v1_materials")
		if err != nil || found || got != nil {
			t.Fatalf("expected not found, got %s found=%v err=%v", got, found, err)
		}
	})

	t.Run("put upserts", func(t *testing.T) {
		db := newPostgresDialectDB(t)
		store := NewPostgresDocumentStore(db)
		if err := store.Put(ctx, "k", []byte(`{"a":1}`)); err != nil {
			t.Fatalf("put: %v", err)
		}
		if err := store.Put(ctx, "k", []byte(`{"a":2}`)); err != nil {
			t.Fatalf("overwrite: %v", err)
		}
		got, found, err := store.Get(ctx, "k")
		if err != nil || !found || string(got) != `{"a":2}` {
			t.Fatalf("unexpected get: %s %v %v", got, found, err)
		}

		var rows int64
		if err := db.Model(&DocumentModel{}).Count(&rows).Error; err != nil {
			t.Fatalf("count: %v", err)
		}
		if rows != 1 {
			t.Fatalf("expected 1 row, got %d", rows)
		}
	})

	t.Run("query errors surface", func(t *testing.T) {
		db := newPostgresDialectDB(t)
		if err := db.Exec(`DROP TABLE documents`).Error; err != nil {
			t.Fatalf("drop: %v", err)
		}
		if _, found, err := NewPostgresDocumentStore(db).Get(ctx, "k"); err == nil || found {
			t.Fatalf("expected error, got found=%v err=%v", found, err)
		}
	})
}
