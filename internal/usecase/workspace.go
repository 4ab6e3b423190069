package usecase

import (
	"context"
	"errors"
	"fmt"
	"mixto_gestao/internal/domain/entities"
	"mixto_gestao/internal/usecase/interfaces"
	"sync"
	"time"

	"go.uber.org/zap"
)

var ErrPersistence = errors.New("failed to persist changes")

// Mutation edits the working copy of the dataset and returns the collections
// it touched. Returning no collections means nothing changed.
type Mutation func(d *entities.Dataset) ([]entities.Collection, error)

// Workspace is the in-memory application state shared by every use case.
//
// Mutations run one at a time on a clone of the dataset. Each touched
// collection is rewritten through the repository and the clone replaces the
// current state only after every write succeeded.
type Workspace struct {
	mu   sync.RWMutex
	data entities.Dataset
	repo interfaces.ICollectionRepository
	log  *zap.Logger
	now  func() time.Time
}

// NewWorkspace loads every collection from repo.
func NewWorkspace(ctx context.Context, repo interfaces.ICollectionRepository, log *zap.Logger) (*Workspace, error) {
	if log == nil {
		log = zap.NewNop()
	}
	data, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load workspace: %w", err)
	}
	if data.Sequences == nil {
		data.Sequences = entities.BudgetSequences{}
	}
	return &Workspace{data: data, repo: repo, log: log.Named("workspace"), now: time.Now}, nil
}

// Snapshot returns a deep copy of the current state.
func (w *Workspace) Snapshot() entities.Dataset {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.data.Clone()
}

// SetClock replaces the clock. Intended for tests and the CLI.
func (w *Workspace) SetClock(now func() time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.now = now
}

// Update applies fn and persists the collections it reports as touched.
func (w *Workspace) Update(ctx context.Context, fn Mutation) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	working := w.data.Clone()
	touched, err := fn(&working)
	if err != nil {
		return err
	}
	if len(touched) == 0 {
		return nil
	}

	for _, c := range touched {
		if err := w.repo.Save(ctx, c, working); err != nil {
			w.log.Error("collection write failed", zap.String("collection", string(c)), zap.Error(err))
			return fmt.Errorf("%w: %s: %w", ErrPersistence, c, err)
		}
	}

	w.data = working
	return nil
}
