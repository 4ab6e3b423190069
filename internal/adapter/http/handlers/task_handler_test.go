package handlers

import (
	"net/http"
	"testing"

	response "mixto_gestao/internal/adapter/http/dto/response"
	"mixto_gestao/pkg"
)

func TestTaskHandler(t *testing.T) {
	t.Run("blank description changes nothing", func(t *testing.T) {
		s := newStack(t)
		seedBudget(t, s)

		w := doJSON(s.router, http.MethodPost, "/v1/budgets/001/2026/tasks", `{"stage":"execucao","description":"   "}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		got := decode[response.TaskMutationResponse](t, w)
		if got.Task != nil || len(got.Budget.Tasks) != 0 {
			t.Fatalf("expected no task, got %+v", got)
		}
	})

	t.Run("invalid stage", func(t *testing.T) {
		s := newStack(t)
		seedBudget(t, s)
		w := doJSON(s.router, http.MethodPost, "/v1/budgets/001/2026/tasks", `{"stage":"demolicao","description":"x"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("progress and confirmed removal", func(t *testing.T) {
		s := newStack(t)
		seedBudget(t, s)

		w := doJSON(s.router, http.MethodPost, "/v1/budgets/001/2026/tasks", `{"stage":"planejamento","description":"Medir"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		first := decode[response.TaskMutationResponse](t, w)
		if first.Task == nil || first.Task.StageLabel != "Planejamento" {
			t.Fatalf("expected planning task, got %+v", first.Task)
		}

		w = doJSON(s.router, http.MethodPost, "/v1/budgets/001/2026/tasks", `{"stage":"execucao","description":"Pintar"}`)
		second := decode[response.TaskMutationResponse](t, w)

		w = doJSON(s.router, http.MethodPatch, "/v1/budgets/001/2026/tasks/"+first.Task.ID+"/status", `{"status":"concluido"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := decode[response.TaskMutationResponse](t, w); got.Budget.Progress != 50 {
			t.Fatalf("expected 50%% progress, got %d", got.Budget.Progress)
		}

		path := "/v1/budgets/001/2026/tasks/" + second.Task.ID
		w = doJSON(s.router, http.MethodDelete, path, "")
		if w.Code != http.StatusPreconditionRequired {
			t.Fatalf("expected 428, got %d", w.Code)
		}
		if got := decode[pkg.HTTPError](t, w); got.Code != "CONFIRMATION_REQUIRED" {
			t.Fatalf("expected CONFIRMATION_REQUIRED, got %+v", got)
		}

		w = doJSON(s.router, http.MethodDelete, path+"?confirm=true", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		got := decode[response.TaskMutationResponse](t, w)
		if len(got.Budget.Tasks) != 1 || got.Budget.Progress != 100 {
			t.Fatalf("expected one finished task left, got %+v", got.Budget)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		s := newStack(t)
		seedBudget(t, s)
		w := doJSON(s.router, http.MethodPatch, "/v1/budgets/001/2026/tasks/nope/status", `{"status":"concluido"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
