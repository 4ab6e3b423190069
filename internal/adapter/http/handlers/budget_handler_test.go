package handlers

import (
	"net/http"
	"testing"

	response "mixto_gestao/internal/adapter/http/dto/response"
	"mixto_gestao/internal/domain/entities"
	"mixto_gestao/internal/usecase"
	"mixto_gestao/pkg"
)

// seedBudget creates a client, a 100/m² service and a budget for three units.
func seedBudget(t *testing.T, s stack) (entities.Service, response.BudgetResponse) {
	t.Helper()
	w := doJSON(s.router, http.MethodPost, "/v1/clients", `{"name":"Acme"}`)
	client := decode[entities.Client](t, w)

	w = doJSON(s.router, http.MethodPost, "/v1/catalog/services", `{"name":"Painting","base_price":100,"unit":"m²"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	service := decode[entities.Service](t, w)

	body := `{"client_id":"` + client.ID + `","description":"Sala","service_items":[{"catalog_id":"` + service.ID + `","quantity":3}]}`
	w = doJSON(s.router, http.MethodPost, "/v1/budgets", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	return service, decode[response.BudgetResponse](t, w)
}

func TestBudgetHandler_CreateAndGet(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		s := newStack(t)
		w := doJSON(s.router, http.MethodPost, "/v1/budgets", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created budget gets the first id of the year", func(t *testing.T) {
		s := newStack(t)
		_, b := seedBudget(t, s)
		if b.ID != "001/2026" {
			t.Fatalf("expected 001/2026, got %q", b.ID)
		}
		if b.TotalValue != 300 {
			t.Fatalf("expected 300, got %v", b.TotalValue)
		}
		if b.Status != "pendente" || b.StatusLabel != "Pendente" {
			t.Fatalf("expected pending budget, got %q/%q", b.Status, b.StatusLabel)
		}

		w := doJSON(s.router, http.MethodGet, "/v1/budgets/001/2026", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := decode[response.BudgetResponse](t, w); got.Description != "Sala" {
			t.Fatalf("expected description Sala, got %q", got.Description)
		}
	})

	t.Run("not found", func(t *testing.T) {
		s := newStack(t)
		w := doJSON(s.router, http.MethodGet, "/v1/budgets/999/2026", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if got := decode[pkg.HTTPError](t, w); got.Code != "BUDGET_NOT_FOUND" {
			t.Fatalf("expected BUDGET_NOT_FOUND, got %+v", got)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		s := newStack(t)
		w := doJSON(s.router, http.MethodGet, "/v1/budgets/abc/2026", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("catalog price change does not touch saved budgets", func(t *testing.T) {
		s := newStack(t)
		service, _ := seedBudget(t, s)

		w := doJSON(s.router, http.MethodPut, "/v1/catalog/services/"+service.ID, `{"name":"Painting","base_price":200,"unit":"m²"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		w = doJSON(s.router, http.MethodGet, "/v1/budgets/001/2026", "")
		got := decode[response.BudgetResponse](t, w)
		if got.TotalValue != 300 || got.ServiceItems[0].UnitPrice != 100 {
			t.Fatalf("expected captured price 100 and total 300, got %+v", got)
		}
	})
}

func TestBudgetHandler_UpdateAndStatus(t *testing.T) {
	t.Run("patch keeps fields that were not sent", func(t *testing.T) {
		s := newStack(t)
		seedBudget(t, s)

		w := doJSON(s.router, http.MethodPatch, "/v1/budgets/001/2026", `{"description":"Sala e cozinha"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		got := decode[response.BudgetResponse](t, w)
		if got.Description != "Sala e cozinha" || got.TotalValue != 300 {
			t.Fatalf("unexpected budget %+v", got)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		s := newStack(t)
		seedBudget(t, s)
		w := doJSON(s.router, http.MethodPatch, "/v1/budgets/001/2026/status", `{"status":"voando"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("approve then filter by status", func(t *testing.T) {
		s := newStack(t)
		seedBudget(t, s)
		w := doJSON(s.router, http.MethodPatch, "/v1/budgets/001/2026/status", `{"status":"aprovado"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := decode[response.BudgetResponse](t, w); got.StatusLabel != "Aprovado" {
			t.Fatalf("expected Aprovado, got %q", got.StatusLabel)
		}

		w = doJSON(s.router, http.MethodGet, "/v1/budgets?status=aprovado", "")
		if got := decode[[]response.BudgetResponse](t, w); len(got) != 1 {
			t.Fatalf("expected 1 approved budget, got %d", len(got))
		}
		w = doJSON(s.router, http.MethodGet, "/v1/budgets?status=pendente", "")
		if got := decode[[]response.BudgetResponse](t, w); len(got) != 0 {
			t.Fatalf("expected no pending budget, got %d", len(got))
		}
	})
}

func TestBudgetHandler_PreviewResolvedAndBoard(t *testing.T) {
	s := newStack(t)
	service, _ := seedBudget(t, s)

	w := doJSON(s.router, http.MethodPost, "/v1/budgets/preview", `{"service_items":[{"catalog_id":"`+service.ID+`","quantity":2}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := decode[usecase.BudgetPreview](t, w); got.TotalValue != 200 {
		t.Fatalf("expected preview total 200, got %v", got.TotalValue)
	}

	w = doJSON(s.router, http.MethodGet, "/v1/budgets/001/2026/resolved", "")
	resolved := decode[response.ResolvedBudgetResponse](t, w)
	if !resolved.ClientFound || resolved.Client.Name != "Acme" {
		t.Fatalf("expected resolved client Acme, got %+v", resolved.Client)
	}

	w = doJSON(s.router, http.MethodGet, "/v1/budgets/board", "")
	cols := decode[[]response.BoardColumnResponse](t, w)
	if len(cols) != 4 {
		t.Fatalf("expected 4 board columns, got %d", len(cols))
	}
	if cols[0].Status != "pendente" || len(cols[0].Cards) != 1 {
		t.Fatalf("expected the budget under pendente, got %+v", cols[0])
	}
	if cols[0].Cards[0].ClientName != "Acme" {
		t.Fatalf("expected client name on card, got %q", cols[0].Cards[0].ClientName)
	}
}

func TestStatsHandler_Dashboard(t *testing.T) {
	s := newStack(t)
	seedBudget(t, s)

	w := doJSON(s.router, http.MethodGet, "/v1/stats", "")
	got := decode[entities.DashboardStats](t, w)
	if got.TotalBudgets != 1 || got.TotalRevenue != 300 {
		t.Fatalf("unexpected stats %+v", got)
	}
	if len(got.MonthlyRevenue) != 12 || got.MonthlyRevenue[2].Value != 300 {
		t.Fatalf("expected 300 in March, got %+v", got.MonthlyRevenue)
	}
}
