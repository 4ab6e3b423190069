package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mixto_gestao/internal/adapter/persistence/repository"
	"mixto_gestao/internal/domain/entities"
	mock_interfaces "mixto_gestao/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWorkspace(t *testing.T) {
	t.Run("load error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICollectionRepository(ctrl)
		repo.EXPECT().Load(gomock.Any()).Return(entities.Dataset{}, errors.New("disk"))

		if _, err := NewWorkspace(context.Background(), repo, nil); err == nil {
			t.Fatal("expected load error")
		}
	})

	t.Run("failed write leaves memory unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICollectionRepository(ctrl)
		repo.EXPECT().Load(gomock.Any()).Return(entities.Dataset{
			Clients: []entities.Client{{ID: "c1", Name: "Ana"}},
		}, nil)
		repo.EXPECT().Save(gomock.Any(), entities.CollectionClients, gomock.Any()).Return(errors.New("disk full"))

		ws, err := NewWorkspace(context.Background(), repo, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		uc := NewClientUseCase(ws)

		_, err = uc.Create(context.Background(), ClientCommand{Name: "Bruno"})
		if !errors.Is(err, ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
		if got := len(ws.Snapshot().Clients); got != 1 {
			t.Fatalf("expected 1 client in memory, got %d", got)
		}
	})

	t.Run("no touched collections skips the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICollectionRepository(ctrl)
		repo.EXPECT().Load(gomock.Any()).Return(entities.Dataset{}, nil)

		ws, _ := NewWorkspace(context.Background(), repo, nil)
		err := ws.Update(context.Background(), func(d *entities.Dataset) ([]entities.Collection, error) {
			return nil, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("snapshot is a deep copy", func(t *testing.T) {
		ws := newTestWorkspace(t, true)
		snap := ws.Snapshot()
		snap.Clients[0].Name = "changed"
		if ws.Snapshot().Clients[0].Name == "changed" {
			t.Fatal("snapshot shares memory with the workspace")
		}
	})
}

func TestWorkspace_BudgetDateSurvivesReload(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryDocumentStore()
	open := func() *Workspace {
		ws, err := NewWorkspace(ctx, repository.NewDocumentRepository(store, "", false, nil), nil)
		if err != nil {
			t.Fatalf("NewWorkspace() error = %v", err)
		}
		return ws
	}

	manaus := time.FixedZone("AMT", -4*60*60)
	ws := open()
	ws.SetClock(func() time.Time { return time.Date(2026, time.January, 31, 22, 0, 0, 0, manaus) })

	svc, err := NewCatalogUseCase(ws).CreateService(ctx, ServiceCommand{Name: "Painting", BasePrice: 100})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}
	created, err := NewBudgetUseCase(ws, nil).Create(ctx, CreateBudgetCommand{
		ServiceItems: []LineItemInput{{CatalogID: svc.ID, Quantity: ptr(1.0)}},
	})
	if err != nil {
		t.Fatalf("create budget: %v", err)
	}

	before := NewStatsUseCase(ws).Dashboard(ctx)
	reloaded := open()
	after := NewStatsUseCase(reloaded).Dashboard(ctx)

	got := reloaded.Snapshot().Budgets[0].Date
	if !got.Equal(created.Date) || got.Format("02/01/2006") != "31/01/2026" {
		t.Fatalf("date changed across reload: before %v, after %v", created.Date, got)
	}
	if before.MonthlyRevenue[0].Value != 100 || after.MonthlyRevenue[0].Value != 100 || after.MonthlyRevenue[1].Value != 0 {
		t.Fatalf("monthly series changed across reload: before %+v, after %+v", before.MonthlyRevenue[:2], after.MonthlyRevenue[:2])
	}
}
