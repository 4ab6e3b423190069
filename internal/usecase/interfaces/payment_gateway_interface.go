package interfaces

import "context"

// CheckoutRequest describes a hosted checkout for one budget.
type CheckoutRequest struct {
	ExternalReference string
	Title             string
	Description       string
	Amount            float64
	CurrencyID        string
	PayerEmail        string
	PayerName         string
}

// CheckoutResult is what the provider returns for a created checkout.
type CheckoutResult struct {
	PreferenceID string
	InitPoint    string
	SandboxPoint string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
type IPaymentGateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutResult, error)
}
