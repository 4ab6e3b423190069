package usecase

import (
	"context"
	"errors"
	"testing"

	"mixto_gestao/internal/domain/entities"
)

func TestTaskUseCase(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*TaskUseCase, *BudgetUseCase, entities.Budget) {
		ws := newTestWorkspace(t, false)
		budgets := NewBudgetUseCase(ws, nil)
		b, err := budgets.Create(ctx, CreateBudgetCommand{})
		if err != nil {
			t.Fatalf("create budget: %v", err)
		}
		return NewTaskUseCase(ws), budgets, b
	}

	t.Run("blank description is a no-op", func(t *testing.T) {
		uc, budgets, b := setup(t)
		out, task, err := uc.AddTask(ctx, b.ID, "planejamento", "   ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task != nil || len(out.Tasks) != 0 {
			t.Fatalf("expected no task, got %+v", out.Tasks)
		}
		stored, _ := budgets.Get(ctx, b.ID)
		if len(stored.Tasks) != 0 {
			t.Fatal("expected no stored task")
		}
	})

	t.Run("scenario B: progress is 50 with 2 of 4 completed", func(t *testing.T) {
		uc, _, b := setup(t)
		ids := make([]string, 0, 4)
		for i, stage := range []string{"planejamento", "Planejamento", "execucao", "Execução"} {
			_, task, err := uc.AddTask(ctx, b.ID, stage, "etapa")
			if err != nil {
				t.Fatalf("task %d: unexpected error: %v", i, err)
			}
			if task.Status != entities.TaskStatusPendente {
				t.Fatalf("expected pending task, got %s", task.Status)
			}
			ids = append(ids, task.ID)
		}
		if _, err := uc.SetTaskStatus(ctx, b.ID, ids[0], "concluido"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, err := uc.SetTaskStatus(ctx, b.ID, ids[2], "Concluído")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ProgressPercent() != 50 {
			t.Fatalf("expected 50, got %d", out.ProgressPercent())
		}
		if got := len(out.TasksByStage(entities.TaskStageExecucao)); got != 2 {
			t.Fatalf("expected 2 execution tasks, got %d", got)
		}

		out, _ = uc.SetTaskStatus(ctx, b.ID, ids[0], "atrasado")
		if out.ProgressPercent() != 25 {
			t.Fatalf("expected 25 after un-completing, got %d", out.ProgressPercent())
		}
	})

	t.Run("invalid inputs", func(t *testing.T) {
		uc, _, b := setup(t)
		if _, _, err := uc.AddTask(ctx, b.ID, "obra", "x"); !errors.Is(err, ErrInvalidTaskStage) {
			t.Fatalf("expected ErrInvalidTaskStage, got %v", err)
		}
		if _, _, err := uc.AddTask(ctx, "099/2026", "execucao", "x"); !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
		if _, err := uc.SetTaskStatus(ctx, b.ID, "t1", "feito"); !errors.Is(err, ErrInvalidTaskStatus) {
			t.Fatalf("expected ErrInvalidTaskStatus, got %v", err)
		}
		if _, err := uc.SetTaskStatus(ctx, b.ID, "t1", "concluido"); !errors.Is(err, ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("remove requires confirmation", func(t *testing.T) {
		uc, budgets, b := setup(t)
		_, task, _ := uc.AddTask(ctx, b.ID, "execucao", "Pintura")

		if _, err := uc.RemoveTask(ctx, b.ID, task.ID, false); !errors.Is(err, ErrTaskRemovalNotConfirmed) {
			t.Fatalf("expected ErrTaskRemovalNotConfirmed, got %v", err)
		}
		stored, _ := budgets.Get(ctx, b.ID)
		if len(stored.Tasks) != 1 {
			t.Fatal("task removed without confirmation")
		}

		out, err := uc.RemoveTask(ctx, b.ID, task.ID, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 0 {
			t.Fatalf("expected no tasks, got %+v", out.Tasks)
		}
		if _, err := uc.RemoveTask(ctx, b.ID, task.ID, true); !errors.Is(err, ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
	})
}
