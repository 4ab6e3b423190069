package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mixto_gestao/internal/adapter/persistence/repository"
	"mixto_gestao/internal/bootstrap"
	"mixto_gestao/internal/config"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Storage.Driver = config.StorageMemory
	cfg.Payments.Mock = true

	app, err := bootstrap.NewWithStore(context.Background(), cfg, repository.NewMemoryDocumentStore(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	app.Workspace.SetClock(func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) })
	return NewRouter(app)
}

func TestNewRouter(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/v1/ping", http.StatusOK},
		{http.MethodGet, "/v1/clients", http.StatusOK},
		{http.MethodGet, "/v1/catalog/services", http.StatusOK},
		{http.MethodGet, "/v1/catalog/materials", http.StatusOK},
		{http.MethodGet, "/v1/budgets", http.StatusOK},
		{http.MethodGet, "/v1/budgets/board", http.StatusOK},
		{http.MethodGet, "/v1/budgets/001/2026", http.StatusNotFound},
		{http.MethodGet, "/v1/stats", http.StatusOK},
		{http.MethodGet, "/v1/reports/budgets.xlsx", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		if w.Code != tt.want {
			t.Fatalf("%s %s: expected %d, got %d", tt.method, tt.path, tt.want, w.Code)
		}
	}
}

func TestNewRouter_PaymentLinkInMockMode(t *testing.T) {
	r := newTestRouter(t)

	post := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := post("/v1/budgets", `{"client_id":"c1","service_items":[{"catalog_id":"s1"}]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = post("/v1/budgets/001/2026/payment-link", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for a pending budget, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/001/2026/status", strings.NewReader(`{"status":"aprovado"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(httptest.NewRecorder(), req)

	w = post("/v1/budgets/001/2026/payment-link", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "sandbox.mercadopago.local") {
		t.Fatalf("expected mock checkout url, got %s", w.Body.String())
	}
}
