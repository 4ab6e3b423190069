package entities

import "time"

// PaymentLink is a hosted checkout created for a budget.
type PaymentLink struct {
	BudgetID     string    `json:"budget_id"`
	PreferenceID string    `json:"preference_id"`
	URL          string    `json:"url"`
	SandboxURL   string    `json:"sandbox_url,omitempty"`
	Amount       float64   `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
}
