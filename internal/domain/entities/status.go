package entities

import "strings"

// BudgetStatus represents the lifecycle of a budget (orçamento).
//
// Transitions are unconstrained: any status may be assigned from any other.
type BudgetStatus string

const (
	BudgetStatusPendente    BudgetStatus = "pendente"
	BudgetStatusAprovado    BudgetStatus = "aprovado"
	BudgetStatusEmAndamento BudgetStatus = "em_andamento"
	BudgetStatusConcluido   BudgetStatus = "concluido"
	BudgetStatusCancelado   BudgetStatus = "cancelado"
)

var budgetStatusLabels = map[BudgetStatus]string{
	BudgetStatusPendente:    "Pendente",
	BudgetStatusAprovado:    "Aprovado",
	BudgetStatusEmAndamento: "Em Andamento",
	BudgetStatusConcluido:   "Concluído",
	BudgetStatusCancelado:   "Cancelado",
}

// BudgetStatuses returns every status in lifecycle order.
func BudgetStatuses() []BudgetStatus {
	return []BudgetStatus{
		BudgetStatusPendente,
		BudgetStatusAprovado,
		BudgetStatusEmAndamento,
		BudgetStatusConcluido,
		BudgetStatusCancelado,
	}
}

func (s BudgetStatus) Valid() bool {
	_, ok := budgetStatusLabels[s]
	return ok
}

// Label is the pt-BR display text.
func (s BudgetStatus) Label() string {
	if l, ok := budgetStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Active reports whether the budget counts as a running service on the dashboard.
func (s BudgetStatus) Active() bool {
	return s == BudgetStatusAprovado || s == BudgetStatusEmAndamento
}

// ParseBudgetStatus accepts either the stored code or the display label.
func ParseBudgetStatus(v string) (BudgetStatus, bool) {
	v = strings.TrimSpace(v)
	for code, label := range budgetStatusLabels {
		if strings.EqualFold(v, string(code)) || strings.EqualFold(v, label) {
			return code, true
		}
	}
	return "", false
}

// TaskStatus is the completion state of a project task.
type TaskStatus string

const (
	TaskStatusPendente  TaskStatus = "pendente"
	TaskStatusConcluido TaskStatus = "concluido"
	TaskStatusAtrasado  TaskStatus = "atrasado"
)

var taskStatusLabels = map[TaskStatus]string{
	TaskStatusPendente:  "Pendente",
	TaskStatusConcluido: "Concluído",
	TaskStatusAtrasado:  "Atrasado",
}

func (s TaskStatus) Valid() bool {
	_, ok := taskStatusLabels[s]
	return ok
}

func (s TaskStatus) Label() string {
	if l, ok := taskStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

func ParseTaskStatus(v string) (TaskStatus, bool) {
	v = strings.TrimSpace(v)
	for code, label := range taskStatusLabels {
		if strings.EqualFold(v, string(code)) || strings.EqualFold(v, label) {
			return code, true
		}
	}
	return "", false
}

// TaskStage groups tasks into the two project phases.
type TaskStage string

const (
	TaskStagePlanejamento TaskStage = "planejamento"
	TaskStageExecucao     TaskStage = "execucao"
)

var taskStageLabels = map[TaskStage]string{
	TaskStagePlanejamento: "Planejamento",
	TaskStageExecucao:     "Execução",
}

func TaskStages() []TaskStage {
	return []TaskStage{TaskStagePlanejamento, TaskStageExecucao}
}

func (s TaskStage) Valid() bool {
	_, ok := taskStageLabels[s]
	return ok
}

func (s TaskStage) Label() string {
	if l, ok := taskStageLabels[s]; ok {
		return l
	}
	return string(s)
}

func ParseTaskStage(v string) (TaskStage, bool) {
	v = strings.TrimSpace(v)
	for code, label := range taskStageLabels {
		if strings.EqualFold(v, string(code)) || strings.EqualFold(v, label) {
			return code, true
		}
	}
	return "", false
}
