package usecase

import (
	"context"
	"errors"
	"testing"

	"mixto_gestao/internal/domain/entities"
)

func TestCatalogUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		uc := NewCatalogUseCase(newTestWorkspace(t, false))
		if _, err := uc.CreateService(ctx, ServiceCommand{Name: ""}); !errors.Is(err, ErrInvalidCatalogName) {
			t.Fatalf("expected ErrInvalidCatalogName, got %v", err)
		}
		if _, err := uc.CreateService(ctx, ServiceCommand{Name: "x", BasePrice: -1}); !errors.Is(err, ErrInvalidCatalogPrice) {
			t.Fatalf("expected ErrInvalidCatalogPrice, got %v", err)
		}
		if _, err := uc.CreateMaterial(ctx, MaterialCommand{Name: "x", Stock: -1}); !errors.Is(err, ErrInvalidCatalogPrice) {
			t.Fatalf("expected ErrInvalidCatalogPrice, got %v", err)
		}
	})

	t.Run("default unit", func(t *testing.T) {
		uc := NewCatalogUseCase(newTestWorkspace(t, false))
		s, err := uc.CreateService(ctx, ServiceCommand{Name: "Visita", BasePrice: 80})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Unit != entities.DefaultUnit {
			t.Fatalf("expected unit %q, got %q", entities.DefaultUnit, s.Unit)
		}
	})

	t.Run("service crud", func(t *testing.T) {
		uc := NewCatalogUseCase(newTestWorkspace(t, false))
		s, _ := uc.CreateService(ctx, ServiceCommand{Name: "Painting", BasePrice: 100, Unit: "m²"})

		updated, err := uc.UpdateService(ctx, s.ID, ServiceCommand{Name: "Painting", BasePrice: 120, Unit: "m²"})
		if err != nil || updated.BasePrice != 120 {
			t.Fatalf("unexpected update %+v err=%v", updated, err)
		}
		if err := uc.DeleteService(ctx, s.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.GetService(ctx, s.ID); !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("material crud", func(t *testing.T) {
		uc := NewCatalogUseCase(newTestWorkspace(t, true))
		if len(uc.ListMaterials(ctx)) != 1 {
			t.Fatal("expected the seeded material")
		}
		m, err := uc.CreateMaterial(ctx, MaterialCommand{Name: "Areia", UnitPrice: 90, Stock: 3, Unit: "m³"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := uc.GetMaterial(ctx, m.ID)
		if err != nil || got.Stock != 3 {
			t.Fatalf("unexpected material %+v err=%v", got, err)
		}
		if _, err := uc.UpdateMaterial(ctx, "missing", MaterialCommand{Name: "x"}); !errors.Is(err, ErrMaterialNotFound) {
			t.Fatalf("expected ErrMaterialNotFound, got %v", err)
		}
		if err := uc.DeleteMaterial(ctx, m.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(uc.ListMaterials(ctx)) != 1 {
			t.Fatal("expected only the seeded material")
		}
	})
}
