package usecase

import (
	"context"
	"errors"
	"mixto_gestao/internal/domain/entities"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrTaskNotFound            = errors.New("task not found")
	ErrInvalidTaskID           = errors.New("invalid task id")
	ErrInvalidTaskStage        = errors.New("invalid task stage")
	ErrInvalidTaskStatus       = errors.New("invalid task status")
	ErrTaskRemovalNotConfirmed = errors.New("task removal must be confirmed")
)

// ITaskUseCase manages the checklist of a budget.
type ITaskUseCase interface {
	AddTask(ctx context.Context, budgetID, stage, description string) (entities.Budget, *entities.ProjectTask, error)
	SetTaskStatus(ctx context.Context, budgetID, taskID, status string) (entities.Budget, error)
	RemoveTask(ctx context.Context, budgetID, taskID string, confirmed bool) (entities.Budget, error)
}

type TaskUseCase struct {
	ws *Workspace
}

var _ ITaskUseCase = (*TaskUseCase)(nil)

func NewTaskUseCase(ws *Workspace) *TaskUseCase {
	return &TaskUseCase{ws: ws}
}

// AddTask appends a pending task to the given stage. A blank description is
// ignored: the budget is returned unchanged with a nil task and nothing is
// written.
func (u *TaskUseCase) AddTask(ctx context.Context, budgetID, stage, description string) (entities.Budget, *entities.ProjectTask, error) {
	budgetID, err := normalizeBudgetID(budgetID)
	if err != nil {
		return entities.Budget{}, nil, err
	}
	st, ok := entities.ParseTaskStage(stage)
	if !ok {
		return entities.Budget{}, nil, ErrInvalidTaskStage
	}
	description = strings.TrimSpace(description)

	var (
		out  entities.Budget
		task *entities.ProjectTask
	)
	err = u.ws.Update(ctx, func(d *entities.Dataset) ([]entities.Collection, error) {
		i := d.BudgetIndex(budgetID)
		if i < 0 {
			return nil, ErrBudgetNotFound
		}
		if description == "" {
			out = d.Budgets[i].Clone()
			return nil, nil
		}

		t := entities.ProjectTask{
			ID:          uuid.NewString(),
			Description: description,
			Stage:       st,
			Status:      entities.TaskStatusPendente,
		}
		d.Budgets[i].Tasks = append(d.Budgets[i].Tasks, t)
		out = d.Budgets[i].Clone()
		task = &t
		return []entities.Collection{entities.CollectionBudgets}, nil
	})
	if err != nil {
		return entities.Budget{}, nil, err
	}
	return out, task, nil
}

// SetTaskStatus sets any of the three task statuses.
func (u *TaskUseCase) SetTaskStatus(ctx context.Context, budgetID, taskID, status string) (entities.Budget, error) {
	budgetID, err := normalizeBudgetID(budgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return entities.Budget{}, ErrInvalidTaskID
	}
	next, ok := entities.ParseTaskStatus(status)
	if !ok {
		return entities.Budget{}, ErrInvalidTaskStatus
	}

	var out entities.Budget
	err = u.ws.Update(ctx, func(d *entities.Dataset) ([]entities.Collection, error) {
		i := d.BudgetIndex(budgetID)
		if i < 0 {
			return nil, ErrBudgetNotFound
		}
		j := d.Budgets[i].TaskIndex(taskID)
		if j < 0 {
			return nil, ErrTaskNotFound
		}
		d.Budgets[i].Tasks[j].Status = next
		out = d.Budgets[i].Clone()
		return []entities.Collection{entities.CollectionBudgets}, nil
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return out, nil
}

// RemoveTask deletes a task. The caller must have confirmed the removal.
func (u *TaskUseCase) RemoveTask(ctx context.Context, budgetID, taskID string, confirmed bool) (entities.Budget, error) {
	budgetID, err := normalizeBudgetID(budgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return entities.Budget{}, ErrInvalidTaskID
	}
	if !confirmed {
		return entities.Budget{}, ErrTaskRemovalNotConfirmed
	}

	var out entities.Budget
	err = u.ws.Update(ctx, func(d *entities.Dataset) ([]entities.Collection, error) {
		i := d.BudgetIndex(budgetID)
		if i < 0 {
			return nil, ErrBudgetNotFound
		}
		j := d.Budgets[i].TaskIndex(taskID)
		if j < 0 {
			return nil, ErrTaskNotFound
		}
		tasks := d.Budgets[i].Tasks
		d.Budgets[i].Tasks = append(tasks[:j:j], tasks[j+1:]...)
		out = d.Budgets[i].Clone()
		return []entities.Collection{entities.CollectionBudgets}, nil
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return out, nil
}
