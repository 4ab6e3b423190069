package request

import "mixto_gestao/internal/usecase"

// LineItemRequest selects a catalog entry. unit_price is optional and, when
// sent, overrides the captured catalog price.
type LineItemRequest struct {
	CatalogID string   `json:"catalog_id"`
	Quantity  *float64 `json:"quantity"`
	UnitPrice *float64 `json:"unit_price"`
}

type CreateBudgetRequest struct {
	ClientID      string            `json:"client_id"`
	Description   string            `json:"description"`
	ServiceItems  []LineItemRequest `json:"service_items"`
	MaterialItems []LineItemRequest `json:"material_items"`
}

func (r CreateBudgetRequest) ToCommand() usecase.CreateBudgetCommand {
	return usecase.CreateBudgetCommand{
		ClientID:      r.ClientID,
		Description:   r.Description,
		ServiceItems:  toLineItemInputs(r.ServiceItems),
		MaterialItems: toLineItemInputs(r.MaterialItems),
	}
}

// UpdateBudgetRequest patches a budget; omitted fields are left as they are.
type UpdateBudgetRequest struct {
	ClientID      *string            `json:"client_id"`
	Description   *string            `json:"description"`
	ServiceItems  *[]LineItemRequest `json:"service_items"`
	MaterialItems *[]LineItemRequest `json:"material_items"`
}

func (r UpdateBudgetRequest) ToCommand() usecase.UpdateBudgetCommand {
	cmd := usecase.UpdateBudgetCommand{ClientID: r.ClientID, Description: r.Description}
	if r.ServiceItems != nil {
		items := toLineItemInputs(*r.ServiceItems)
		cmd.ServiceItems = &items
	}
	if r.MaterialItems != nil {
		items := toLineItemInputs(*r.MaterialItems)
		cmd.MaterialItems = &items
	}
	return cmd
}

type PreviewBudgetRequest struct {
	ServiceItems  []LineItemRequest `json:"service_items"`
	MaterialItems []LineItemRequest `json:"material_items"`
}

func (r PreviewBudgetRequest) Inputs() (services, materials []usecase.LineItemInput) {
	return toLineItemInputs(r.ServiceItems), toLineItemInputs(r.MaterialItems)
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func toLineItemInputs(in []LineItemRequest) []usecase.LineItemInput {
	out := make([]usecase.LineItemInput, 0, len(in))
	for _, li := range in {
		out = append(out, usecase.LineItemInput{CatalogID: li.CatalogID, Quantity: li.Quantity, UnitPrice: li.UnitPrice})
	}
	return out
}
