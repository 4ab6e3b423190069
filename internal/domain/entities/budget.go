package entities

import (
	"math"
	"time"
)

// LineItem is a quantity plus a price snapshot of a catalog entry.
//
// An empty CatalogID is an unselected placeholder. UnitPrice is captured when
// the entry is selected and is never refreshed from the catalog afterwards.
type LineItem struct {
	CatalogID string  `json:"catalog_id"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

func (li LineItem) Selected() bool {
	return li.CatalogID != ""
}

func (li LineItem) Subtotal() float64 {
	return li.Quantity * li.UnitPrice
}

// ProjectTask is a checklist entry owned by a single budget.
type ProjectTask struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Stage       TaskStage  `json:"stage"`
	Status      TaskStatus `json:"status"`
}

// Budget is a price quotation for a client.
//
// ID has the visible form NNN/YYYY and, like Date, never changes after
// creation. TotalValue is stored alongside the record and must be recomputed
// whenever the item lists change.
type Budget struct {
	ID            string        `json:"id"`
	ClientID      string        `json:"client_id"`
	ServiceItems  []LineItem    `json:"service_items"`
	MaterialItems []LineItem    `json:"material_items"`
	TotalValue    float64       `json:"total_value"`
	Date          time.Time     `json:"date"`
	Status        BudgetStatus  `json:"status"`
	Description   string        `json:"description"`
	Tasks         []ProjectTask `json:"tasks"`
}

// Items returns the line item list for the given kind.
func (b Budget) Items(kind LineItemKind) []LineItem {
	if kind == LineItemKindMaterial {
		return b.MaterialItems
	}
	return b.ServiceItems
}

// Progress is the fraction of completed tasks, 0 when there are none.
func (b Budget) Progress() float64 {
	if len(b.Tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range b.Tasks {
		if t.Status == TaskStatusConcluido {
			done++
		}
	}
	return float64(done) / float64(len(b.Tasks))
}

// ProgressPercent is Progress scaled to 0..100 and rounded.
func (b Budget) ProgressPercent() int {
	return int(math.Round(b.Progress() * 100))
}

// TaskIndex returns the position of the task or -1.
func (b Budget) TaskIndex(taskID string) int {
	for i, t := range b.Tasks {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}

// TasksByStage keeps insertion order inside each stage.
func (b Budget) TasksByStage(stage TaskStage) []ProjectTask {
	out := make([]ProjectTask, 0)
	for _, t := range b.Tasks {
		if t.Stage == stage {
			out = append(out, t)
		}
	}
	return out
}

// Clone returns a copy that shares no slices with b.
func (b Budget) Clone() Budget {
	c := b
	c.ServiceItems = append([]LineItem(nil), b.ServiceItems...)
	c.MaterialItems = append([]LineItem(nil), b.MaterialItems...)
	c.Tasks = append([]ProjectTask(nil), b.Tasks...)
	return c
}
