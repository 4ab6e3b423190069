package usecase

import (
	"context"
	"errors"
	"mixto_gestao/internal/domain/draft"
	"mixto_gestao/internal/domain/entities"
	"mixto_gestao/internal/domain/pricing"
	"mixto_gestao/internal/metrics"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrInvalidBudgetID     = errors.New("invalid budget id, expected NNN/YYYY")
	ErrInvalidBudgetStatus = errors.New("invalid budget status")
)

// LineItemInput is one submitted line item. A nil Quantity keeps the
// placeholder quantity of 1; a nil UnitPrice uses the captured catalog price.
type LineItemInput struct {
	CatalogID string
	Quantity  *float64
	UnitPrice *float64
}

type CreateBudgetCommand struct {
	ClientID      string
	Description   string
	ServiceItems  []LineItemInput
	MaterialItems []LineItemInput
}

// UpdateBudgetCommand patches a budget. Nil fields are left untouched; the id
// and the creation date cannot be changed.
type UpdateBudgetCommand struct {
	ClientID      *string
	Description   *string
	ServiceItems  *[]LineItemInput
	MaterialItems *[]LineItemInput
}

// BudgetPreview is a priced item list that has not been saved.
type BudgetPreview struct {
	ServiceItems  []entities.ResolvedLineItem `json:"service_items"`
	MaterialItems []entities.ResolvedLineItem `json:"material_items"`
	TotalValue    float64                     `json:"total_value"`
}

type StageTasks struct {
	Stage entities.TaskStage     `json:"stage"`
	Label string                 `json:"label"`
	Tasks []entities.ProjectTask `json:"tasks"`
}

type BoardCard struct {
	Budget          entities.Budget `json:"budget"`
	ClientName      string          `json:"client_name"`
	ProgressPercent int             `json:"progress_percent"`
	Stages          []StageTasks    `json:"stages"`
}

type BoardColumn struct {
	Status entities.BudgetStatus `json:"status"`
	Label  string                `json:"label"`
	Cards  []BoardCard           `json:"cards"`
}

type IBudgetUseCase interface {
	List(ctx context.Context, status string) ([]entities.Budget, error)
	Get(ctx context.Context, id string) (entities.Budget, error)
	Create(ctx context.Context, cmd CreateBudgetCommand) (entities.Budget, error)
	Update(ctx context.Context, id string, cmd UpdateBudgetCommand) (entities.Budget, error)
	SetStatus(ctx context.Context, id string, status string) (entities.Budget, error)
	Resolve(ctx context.Context, id string) (entities.ResolvedBudget, error)
	Preview(ctx context.Context, services, materials []LineItemInput) (BudgetPreview, error)
	Board(ctx context.Context) []BoardColumn
}

type BudgetUseCase struct {
	ws  *Workspace
	log *zap.Logger
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(ws *Workspace, log *zap.Logger) *BudgetUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &BudgetUseCase{ws: ws, log: log.Named("budget.usecase")}
}

// List returns every budget, optionally only those with the given status
// (code or label).
func (u *BudgetUseCase) List(_ context.Context, status string) ([]entities.Budget, error) {
	budgets := u.ws.Snapshot().Budgets
	status = strings.TrimSpace(status)
	if status == "" {
		return budgets, nil
	}
	want, ok := entities.ParseBudgetStatus(status)
	if !ok {
		return nil, ErrInvalidBudgetStatus
	}
	out := make([]entities.Budget, 0, len(budgets))
	for _, b := range budgets {
		if b.Status == want {
			out = append(out, b)
		}
	}
	return out, nil
}

func (u *BudgetUseCase) Get(_ context.Context, id string) (entities.Budget, error) {
	id, err := normalizeBudgetID(id)
	if err != nil {
		return entities.Budget{}, err
	}
	d := u.ws.Snapshot()
	i := d.BudgetIndex(id)
	if i < 0 {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return d.Budgets[i], nil
}

// Create prices the submitted items against the current catalog and stores a
// new pending budget dated now. The id takes the next sequence of the year.
func (u *BudgetUseCase) Create(ctx context.Context, cmd CreateBudgetCommand) (entities.Budget, error) {
	var created entities.Budget
	err := u.ws.Update(ctx, func(d *entities.Dataset) ([]entities.Collection, error) {
		services, err := buildLineItems(entities.LineItemKindService, nil, cmd.ServiceItems, *d)
		if err != nil {
			return nil, err
		}
		materials, err := buildLineItems(entities.LineItemKindMaterial, nil, cmd.MaterialItems, *d)
		if err != nil {
			return nil, err
		}

		now := u.ws.now()
		year := now.Year()
		seq := entities.NextBudgetSequence(d.Budgets, d.Sequences, year)
		if d.Sequences == nil {
			d.Sequences = entities.BudgetSequences{}
		}
		d.Sequences[year] = seq

		created = entities.Budget{
			ID:            entities.FormatBudgetID(seq, year),
			ClientID:      strings.TrimSpace(cmd.ClientID),
			ServiceItems:  services,
			MaterialItems: materials,
			TotalValue:    pricing.BudgetTotal(services, materials),
			Date:          now,
			Status:        entities.BudgetStatusPendente,
			Description:   strings.TrimSpace(cmd.Description),
			Tasks:         []entities.ProjectTask{},
		}
		d.Budgets = append(d.Budgets, created)
		return []entities.Collection{entities.CollectionBudgetSequences, entities.CollectionBudgets}, nil
	})
	if err != nil {
		return entities.Budget{}, err
	}

	metrics.IncrementBudgetsCreated()
	u.log.Info("budget created", zap.String("budget_id", created.ID), zap.Float64("total", created.TotalValue))
	return created, nil
}

func (u *BudgetUseCase) Update(ctx context.Context, id string, cmd UpdateBudgetCommand) (entities.Budget, error) {
	id, err := normalizeBudgetID(id)
	if err != nil {
		return entities.Budget{}, err
	}

	var updated entities.Budget
	err = u.ws.Update(ctx, func(d *entities.Dataset) ([]entities.Collection, error) {
		i := d.BudgetIndex(id)
		if i < 0 {
			return nil, ErrBudgetNotFound
		}
		b := &d.Budgets[i]

		if cmd.ClientID != nil {
			b.ClientID = strings.TrimSpace(*cmd.ClientID)
		}
		if cmd.Description != nil {
			b.Description = strings.TrimSpace(*cmd.Description)
		}
		if cmd.ServiceItems != nil {
			items, err := buildLineItems(entities.LineItemKindService, b.ServiceItems, *cmd.ServiceItems, *d)
			if err != nil {
				return nil, err
			}
			b.ServiceItems = items
		}
		if cmd.MaterialItems != nil {
			items, err := buildLineItems(entities.LineItemKindMaterial, b.MaterialItems, *cmd.MaterialItems, *d)
			if err != nil {
				return nil, err
			}
			b.MaterialItems = items
		}
		b.TotalValue = pricing.BudgetTotal(b.ServiceItems, b.MaterialItems)

		updated = b.Clone()
		return []entities.Collection{entities.CollectionBudgets}, nil
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return updated, nil
}

// SetStatus moves a budget to any of the five statuses.
func (u *BudgetUseCase) SetStatus(ctx context.Context, id string, status string) (entities.Budget, error) {
	id, err := normalizeBudgetID(id)
	if err != nil {
		return entities.Budget{}, err
	}
	next, ok := entities.ParseBudgetStatus(status)
	if !ok {
		return entities.Budget{}, ErrInvalidBudgetStatus
	}

	var updated entities.Budget
	var previous entities.BudgetStatus
	err = u.ws.Update(ctx, func(d *entities.Dataset) ([]entities.Collection, error) {
		i := d.BudgetIndex(id)
		if i < 0 {
			return nil, ErrBudgetNotFound
		}
		previous = d.Budgets[i].Status
		d.Budgets[i].Status = next
		updated = d.Budgets[i].Clone()
		return []entities.Collection{entities.CollectionBudgets}, nil
	})
	if err != nil {
		return entities.Budget{}, err
	}

	metrics.IncrementStatusChange(string(next))
	u.log.Info("budget status changed",
		zap.String("budget_id", id),
		zap.String("from", string(previous)),
		zap.String("to", string(next)),
	)
	return updated, nil
}

// Resolve joins the budget with its client and catalog entries. Missing
// references resolve to placeholders.
func (u *BudgetUseCase) Resolve(_ context.Context, id string) (entities.ResolvedBudget, error) {
	id, err := normalizeBudgetID(id)
	if err != nil {
		return entities.ResolvedBudget{}, err
	}
	d := u.ws.Snapshot()
	i := d.BudgetIndex(id)
	if i < 0 {
		return entities.ResolvedBudget{}, ErrBudgetNotFound
	}
	return entities.ResolveBudget(d.Budgets[i], d), nil
}

// Preview prices an item list against the current catalog without saving it.
func (u *BudgetUseCase) Preview(_ context.Context, services, materials []LineItemInput) (BudgetPreview, error) {
	d := u.ws.Snapshot()
	s, err := buildLineItems(entities.LineItemKindService, nil, services, d)
	if err != nil {
		return BudgetPreview{}, err
	}
	m, err := buildLineItems(entities.LineItemKindMaterial, nil, materials, d)
	if err != nil {
		return BudgetPreview{}, err
	}

	rb := entities.ResolveBudget(entities.Budget{ServiceItems: s, MaterialItems: m}, d)
	return BudgetPreview{
		ServiceItems:  rb.ServiceItems,
		MaterialItems: rb.MaterialItems,
		TotalValue:    pricing.BudgetTotal(s, m),
	}, nil
}

// Board groups budgets into the tracking columns. Cancelled budgets are not
// shown.
func (u *BudgetUseCase) Board(_ context.Context) []BoardColumn {
	d := u.ws.Snapshot()
	columns := []entities.BudgetStatus{
		entities.BudgetStatusPendente,
		entities.BudgetStatusAprovado,
		entities.BudgetStatusEmAndamento,
		entities.BudgetStatusConcluido,
	}

	out := make([]BoardColumn, 0, len(columns))
	for _, status := range columns {
		col := BoardColumn{Status: status, Label: status.Label(), Cards: []BoardCard{}}
		for _, b := range d.Budgets {
			if b.Status != status {
				continue
			}
			name := entities.UnknownClientName
			if c, ok := d.FindClient(b.ClientID); ok {
				name = c.Name
			}
			card := BoardCard{Budget: b, ClientName: name, ProgressPercent: b.ProgressPercent()}
			for _, stage := range entities.TaskStages() {
				card.Stages = append(card.Stages, StageTasks{Stage: stage, Label: stage.Label(), Tasks: b.TasksByStage(stage)})
			}
			col.Cards = append(col.Cards, card)
		}
		out = append(out, col)
	}
	return out
}

// buildLineItems turns submitted inputs into line items through a draft.
// An input whose catalog id matches the previous item at the same position
// keeps that item's captured price and quantity unless new values are sent.
func buildLineItems(kind entities.LineItemKind, prev []entities.LineItem, inputs []LineItemInput, catalog draft.CatalogLookup) ([]entities.LineItem, error) {
	d := draft.New()
	for i, in := range inputs {
		idx, err := d.AddLineItem(kind)
		if err != nil {
			return nil, err
		}

		catalogID := strings.TrimSpace(in.CatalogID)
		if i < len(prev) && prev[i].Selected() && prev[i].CatalogID == catalogID {
			kept := prev[i]
			if err := d.Apply(draft.LineItemEdit{Kind: kind, Index: idx, CatalogID: &kept.CatalogID, Quantity: &kept.Quantity, UnitPrice: &kept.UnitPrice}, nil); err != nil {
				return nil, err
			}
		}

		edit := draft.LineItemEdit{
			Kind:      kind,
			Index:     idx,
			CatalogID: &catalogID,
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
		}
		if err := d.Apply(edit, catalog); err != nil {
			return nil, err
		}
	}

	if kind == entities.LineItemKindMaterial {
		return d.MaterialItems, nil
	}
	return d.ServiceItems, nil
}

func normalizeBudgetID(id string) (string, error) {
	id = strings.TrimSpace(id)
	seq, year, ok := entities.ParseBudgetID(id)
	if !ok {
		return "", ErrInvalidBudgetID
	}
	return entities.FormatBudgetID(seq, year), nil
}
