package repository

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"mixto_gestao/internal/domain/entities"
)

// Records are the on-disk JSON shape. Field names follow the documents the
// browser dashboard wrote, so old exports load without conversion tools.

type clientRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Document string `json:"document"`
}

type serviceRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	BasePrice   flexFloat `json:"basePrice"`
	Unit        string    `json:"unit"`
}

type materialRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UnitPrice flexFloat `json:"unitPrice"`
	Stock     flexFloat `json:"stock"`
	Unit      string    `json:"unit"`
}

// lineItemRecord accepts the legacy "id" field as the catalog id.
type lineItemRecord struct {
	CatalogID string    `json:"catalogId"`
	LegacyID  string    `json:"id,omitempty"`
	Quantity  flexFloat `json:"quantity"`
	UnitPrice flexFloat `json:"unitPrice"`
}

type taskRecord struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Stage       string `json:"stage"`
	Status      string `json:"status"`
}

type budgetRecord struct {
	ID              string           `json:"id"`
	ClientID        string           `json:"clientId"`
	ServiceItems    []lineItemRecord `json:"serviceItems"`
	MaterialItems   []lineItemRecord `json:"materialItems"`
	LegacyServices  []lineItemRecord `json:"services,omitempty"`
	LegacyMaterials []lineItemRecord `json:"materials,omitempty"`
	TotalValue      flexFloat        `json:"totalValue"`
	Date            string           `json:"date"`
	Status          string           `json:"status"`
	Description     string           `json:"description"`
	Tasks           []taskRecord     `json:"tasks"`
}

// flexFloat decodes a JSON number or a numeric string. Form inputs in the
// legacy documents were sometimes stored as strings.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

func toClientRecords(in []entities.Client) []clientRecord {
	out := make([]clientRecord, 0, len(in))
	for _, c := range in {
		out = append(out, clientRecord(c))
	}
	return out
}

func fromClientRecords(in []clientRecord) []entities.Client {
	out := make([]entities.Client, 0, len(in))
	for _, r := range in {
		out = append(out, entities.Client(r))
	}
	return out
}

func toServiceRecords(in []entities.Service) []serviceRecord {
	out := make([]serviceRecord, 0, len(in))
	for _, s := range in {
		out = append(out, serviceRecord{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			BasePrice:   flexFloat(s.BasePrice),
			Unit:        s.Unit,
		})
	}
	return out
}

func fromServiceRecords(in []serviceRecord) []entities.Service {
	out := make([]entities.Service, 0, len(in))
	for _, r := range in {
		out = append(out, entities.Service{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			BasePrice:   float64(r.BasePrice),
			Unit:        r.Unit,
		})
	}
	return out
}

func toMaterialRecords(in []entities.Material) []materialRecord {
	out := make([]materialRecord, 0, len(in))
	for _, m := range in {
		out = append(out, materialRecord{
			ID:        m.ID,
			Name:      m.Name,
			UnitPrice: flexFloat(m.UnitPrice),
			Stock:     flexFloat(m.Stock),
			Unit:      m.Unit,
		})
	}
	return out
}

func fromMaterialRecords(in []materialRecord) []entities.Material {
	out := make([]entities.Material, 0, len(in))
	for _, r := range in {
		out = append(out, entities.Material{
			ID:        r.ID,
			Name:      r.Name,
			UnitPrice: float64(r.UnitPrice),
			Stock:     float64(r.Stock),
			Unit:      r.Unit,
		})
	}
	return out
}

func toLineItemRecords(in []entities.LineItem) []lineItemRecord {
	out := make([]lineItemRecord, 0, len(in))
	for _, li := range in {
		out = append(out, lineItemRecord{
			CatalogID: li.CatalogID,
			Quantity:  flexFloat(li.Quantity),
			UnitPrice: flexFloat(li.UnitPrice),
		})
	}
	return out
}

func fromLineItemRecords(in []lineItemRecord) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(in))
	for _, r := range in {
		id := r.CatalogID
		if id == "" {
			id = r.LegacyID
		}
		out = append(out, entities.LineItem{
			CatalogID: id,
			Quantity:  float64(r.Quantity),
			UnitPrice: float64(r.UnitPrice),
		})
	}
	return out
}

func toBudgetRecords(in []entities.Budget) []budgetRecord {
	out := make([]budgetRecord, 0, len(in))
	for _, b := range in {
		tasks := make([]taskRecord, 0, len(b.Tasks))
		for _, t := range b.Tasks {
			tasks = append(tasks, taskRecord{
				ID:          t.ID,
				Description: t.Description,
				Stage:       string(t.Stage),
				Status:      string(t.Status),
			})
		}
		// The offset is kept so the calendar day and month survive a reload.
		date := ""
		if !b.Date.IsZero() {
			date = b.Date.Format(time.RFC3339Nano)
		}
		out = append(out, budgetRecord{
			ID:            b.ID,
			ClientID:      b.ClientID,
			ServiceItems:  toLineItemRecords(b.ServiceItems),
			MaterialItems: toLineItemRecords(b.MaterialItems),
			TotalValue:    flexFloat(b.TotalValue),
			Date:          date,
			Status:        string(b.Status),
			Description:   b.Description,
			Tasks:         tasks,
		})
	}
	return out
}

// fromBudgetRecords also migrates legacy documents: item lists under
// services/materials, display labels instead of status codes. Unknown
// statuses fall back to pending and an unparseable date loads as zero.
func fromBudgetRecords(in []budgetRecord) []entities.Budget {
	out := make([]entities.Budget, 0, len(in))
	for _, r := range in {
		serviceItems := r.ServiceItems
		if serviceItems == nil {
			serviceItems = r.LegacyServices
		}
		materialItems := r.MaterialItems
		if materialItems == nil {
			materialItems = r.LegacyMaterials
		}

		status, ok := entities.ParseBudgetStatus(r.Status)
		if !ok {
			status = entities.BudgetStatusPendente
		}

		tasks := make([]entities.ProjectTask, 0, len(r.Tasks))
		for _, t := range r.Tasks {
			stage, ok := entities.ParseTaskStage(t.Stage)
			if !ok {
				stage = entities.TaskStagePlanejamento
			}
			ts, ok := entities.ParseTaskStatus(t.Status)
			if !ok {
				ts = entities.TaskStatusPendente
			}
			tasks = append(tasks, entities.ProjectTask{
				ID:          t.ID,
				Description: t.Description,
				Stage:       stage,
				Status:      ts,
			})
		}

		date, _ := time.Parse(time.RFC3339Nano, r.Date)

		out = append(out, entities.Budget{
			ID:            r.ID,
			ClientID:      r.ClientID,
			ServiceItems:  fromLineItemRecords(serviceItems),
			MaterialItems: fromLineItemRecords(materialItems),
			TotalValue:    float64(r.TotalValue),
			Date:          date,
			Status:        status,
			Description:   r.Description,
			Tasks:         tasks,
		})
	}
	return out
}

func toSequenceRecord(in entities.BudgetSequences) map[string]int {
	out := make(map[string]int, len(in))
	for year, seq := range in {
		out[strconv.Itoa(year)] = seq
	}
	return out
}

func fromSequenceRecord(in map[string]int) entities.BudgetSequences {
	out := make(entities.BudgetSequences, len(in))
	for k, seq := range in {
		if year, err := strconv.Atoi(k); err == nil {
			out[year] = seq
		}
	}
	return out
}
