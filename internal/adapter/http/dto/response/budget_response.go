package response

import (
	"mixto_gestao/internal/domain/entities"
	"mixto_gestao/internal/usecase"
	"time"
)

type LineItemResponse struct {
	CatalogID string  `json:"catalog_id"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

type TaskResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Stage       string `json:"stage"`
	StageLabel  string `json:"stage_label"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
}

type BudgetResponse struct {
	ID            string             `json:"id"`
	ClientID      string             `json:"client_id"`
	ServiceItems  []LineItemResponse `json:"service_items"`
	MaterialItems []LineItemResponse `json:"material_items"`
	TotalValue    float64            `json:"total_value"`
	Date          *time.Time         `json:"date"`
	Status        string             `json:"status"`
	StatusLabel   string             `json:"status_label"`
	Description   string             `json:"description"`
	Tasks         []TaskResponse     `json:"tasks"`
	Progress      int                `json:"progress"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	out := BudgetResponse{
		ID:            b.ID,
		ClientID:      b.ClientID,
		ServiceItems:  fromLineItems(b.ServiceItems),
		MaterialItems: fromLineItems(b.MaterialItems),
		TotalValue:    b.TotalValue,
		Status:        string(b.Status),
		StatusLabel:   b.Status.Label(),
		Description:   b.Description,
		Tasks:         make([]TaskResponse, 0, len(b.Tasks)),
		Progress:      b.ProgressPercent(),
	}
	if !b.Date.IsZero() {
		d := b.Date
		out.Date = &d
	}
	for _, t := range b.Tasks {
		out.Tasks = append(out.Tasks, FromTask(t))
	}
	return out
}

func FromBudgets(in []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(in))
	for _, b := range in {
		out = append(out, FromBudget(b))
	}
	return out
}

func FromTask(t entities.ProjectTask) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Description: t.Description,
		Stage:       string(t.Stage),
		StageLabel:  t.Stage.Label(),
		Status:      string(t.Status),
		StatusLabel: t.Status.Label(),
	}
}

func fromLineItems(in []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(in))
	for _, li := range in {
		out = append(out, LineItemResponse{
			CatalogID: li.CatalogID,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			Subtotal:  li.Subtotal(),
		})
	}
	return out
}

type ResolvedBudgetResponse struct {
	Budget        BudgetResponse              `json:"budget"`
	Client        entities.Client             `json:"client"`
	ClientFound   bool                        `json:"client_found"`
	ServiceItems  []entities.ResolvedLineItem `json:"service_items"`
	MaterialItems []entities.ResolvedLineItem `json:"material_items"`
}

func FromResolvedBudget(rb entities.ResolvedBudget) ResolvedBudgetResponse {
	return ResolvedBudgetResponse{
		Budget:        FromBudget(rb.Budget),
		Client:        rb.Client,
		ClientFound:   rb.ClientFound,
		ServiceItems:  rb.ServiceItems,
		MaterialItems: rb.MaterialItems,
	}
}

// TaskMutationResponse is returned by task endpoints. Task is absent when a
// blank description made the call a no-op.
type TaskMutationResponse struct {
	Task   *TaskResponse  `json:"task,omitempty"`
	Budget BudgetResponse `json:"budget"`
}

type BoardCardResponse struct {
	Budget     BudgetResponse       `json:"budget"`
	ClientName string               `json:"client_name"`
	Progress   int                  `json:"progress"`
	Stages     []BoardStageResponse `json:"stages"`
}

type BoardStageResponse struct {
	Stage string         `json:"stage"`
	Label string         `json:"label"`
	Tasks []TaskResponse `json:"tasks"`
}

type BoardColumnResponse struct {
	Status string              `json:"status"`
	Label  string              `json:"label"`
	Cards  []BoardCardResponse `json:"cards"`
}

func FromBoard(cols []usecase.BoardColumn) []BoardColumnResponse {
	out := make([]BoardColumnResponse, 0, len(cols))
	for _, col := range cols {
		c := BoardColumnResponse{Status: string(col.Status), Label: col.Label, Cards: make([]BoardCardResponse, 0, len(col.Cards))}
		for _, card := range col.Cards {
			cr := BoardCardResponse{
				Budget:     FromBudget(card.Budget),
				ClientName: card.ClientName,
				Progress:   card.ProgressPercent,
				Stages:     make([]BoardStageResponse, 0, len(card.Stages)),
			}
			for _, st := range card.Stages {
				sr := BoardStageResponse{Stage: string(st.Stage), Label: st.Label, Tasks: make([]TaskResponse, 0, len(st.Tasks))}
				for _, t := range st.Tasks {
					sr.Tasks = append(sr.Tasks, FromTask(t))
				}
				cr.Stages = append(cr.Stages, sr)
			}
			c.Cards = append(c.Cards, cr)
		}
		out = append(out, c)
	}
	return out
}
