package usecase

import (
	"context"
	"testing"
	"time"

	"mixto_gestao/internal/adapter/persistence/repository"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestWorkspace(t *testing.T, seed bool) *Workspace {
	t.Helper()
	repo := repository.NewDocumentRepository(repository.NewMemoryDocumentStore(), "", seed, nil)
	ws, err := NewWorkspace(context.Background(), repo, nil)
	if err != nil {
		t.Fatalf("NewWorkspace() error = %v", err)
	}
	ws.SetClock(func() time.Time { return testNow })
	return ws
}

func ptr[T any](v T) *T {
	return &v
}
