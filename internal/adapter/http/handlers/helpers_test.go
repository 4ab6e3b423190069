package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mixto_gestao/internal/adapter/persistence/repository"
	"mixto_gestao/internal/usecase"

	"github.com/gin-gonic/gin"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// stack holds real use cases over an in-memory store.
type stack struct {
	ws      *usecase.Workspace
	clients *usecase.ClientUseCase
	catalog *usecase.CatalogUseCase
	budgets *usecase.BudgetUseCase
	tasks   *usecase.TaskUseCase
	router  *gin.Engine
}

func newStack(t *testing.T) stack {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewDocumentRepository(repository.NewMemoryDocumentStore(), "", false, nil)
	ws, err := usecase.NewWorkspace(context.Background(), repo, nil)
	if err != nil {
		t.Fatalf("NewWorkspace() error = %v", err)
	}
	ws.SetClock(func() time.Time { return testNow })

	s := stack{
		ws:      ws,
		clients: usecase.NewClientUseCase(ws),
		catalog: usecase.NewCatalogUseCase(ws),
		budgets: usecase.NewBudgetUseCase(ws, nil),
		tasks:   usecase.NewTaskUseCase(ws),
		router:  gin.New(),
	}

	ch := NewClientHandler(s.clients)
	s.router.GET("/v1/clients", ch.ListClients)
	s.router.POST("/v1/clients", ch.CreateClient)
	s.router.GET("/v1/clients/:id", ch.GetClient)
	s.router.PUT("/v1/clients/:id", ch.UpdateClient)
	s.router.DELETE("/v1/clients/:id", ch.DeleteClient)

	cat := NewCatalogHandler(s.catalog)
	s.router.POST("/v1/catalog/services", cat.CreateService)
	s.router.PUT("/v1/catalog/services/:id", cat.UpdateService)
	s.router.POST("/v1/catalog/materials", cat.CreateMaterial)
	s.router.GET("/v1/catalog/materials/:id", cat.GetMaterial)

	bh := NewBudgetHandler(s.budgets)
	s.router.GET("/v1/budgets", bh.ListBudgets)
	s.router.POST("/v1/budgets", bh.CreateBudget)
	s.router.GET("/v1/budgets/board", bh.Board)
	s.router.POST("/v1/budgets/preview", bh.PreviewBudget)
	s.router.GET("/v1/budgets/:seq/:year", bh.GetBudget)
	s.router.PATCH("/v1/budgets/:seq/:year", bh.UpdateBudget)
	s.router.PATCH("/v1/budgets/:seq/:year/status", bh.SetBudgetStatus)
	s.router.GET("/v1/budgets/:seq/:year/resolved", bh.GetResolvedBudget)

	th := NewTaskHandler(s.tasks)
	s.router.POST("/v1/budgets/:seq/:year/tasks", th.AddTask)
	s.router.PATCH("/v1/budgets/:seq/:year/tasks/:task_id/status", th.SetTaskStatus)
	s.router.DELETE("/v1/budgets/:seq/:year/tasks/:task_id", th.RemoveTask)

	sh := NewStatsHandler(usecase.NewStatsUseCase(ws))
	s.router.GET("/v1/stats", sh.Dashboard)
	return s
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json %q: %v", w.Body.String(), err)
	}
	return out
}
