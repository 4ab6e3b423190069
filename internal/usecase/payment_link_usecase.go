package usecase

import (
	"context"
	"errors"
	"fmt"
	"mixto_gestao/internal/domain/entities"
	"mixto_gestao/internal/usecase/interfaces"
	"time"

	"go.uber.org/zap"
)

var (
	ErrBudgetNotApproved = errors.New("budget must be approved before a payment link is created")
	ErrBudgetHasNoValue  = errors.New("budget total must be greater than zero")
	ErrPaymentGateway    = errors.New("payment gateway failure")
)

type IPaymentLinkUseCase interface {
	Create(ctx context.Context, budgetID string) (entities.PaymentLink, error)
}

type PaymentLinkUseCase struct {
	budgets  IBudgetUseCase
	ws       *Workspace
	gateway  interfaces.IPaymentGateway
	currency string
	log      *zap.Logger
}

var _ IPaymentLinkUseCase = (*PaymentLinkUseCase)(nil)

func NewPaymentLinkUseCase(ws *Workspace, budgets IBudgetUseCase, gateway interfaces.IPaymentGateway, currency string, log *zap.Logger) *PaymentLinkUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	if currency == "" {
		currency = "BRL"
	}
	return &PaymentLinkUseCase{budgets: budgets, ws: ws, gateway: gateway, currency: currency, log: log.Named("payment.usecase")}
}

// Create opens a hosted checkout for the budget total. Only budgets that were
// approved, are in progress or are finished can be paid.
func (u *PaymentLinkUseCase) Create(ctx context.Context, budgetID string) (entities.PaymentLink, error) {
	b, err := u.budgets.Get(ctx, budgetID)
	if err != nil {
		return entities.PaymentLink{}, err
	}
	switch b.Status {
	case entities.BudgetStatusAprovado, entities.BudgetStatusEmAndamento, entities.BudgetStatusConcluido:
	default:
		return entities.PaymentLink{}, ErrBudgetNotApproved
	}
	if b.TotalValue <= 0 {
		return entities.PaymentLink{}, ErrBudgetHasNoValue
	}

	req := interfaces.CheckoutRequest{
		ExternalReference: b.ID,
		Title:             "Orçamento " + b.ID,
		Description:       b.Description,
		Amount:            b.TotalValue,
		CurrencyID:        u.currency,
	}
	if c, ok := u.ws.Snapshot().FindClient(b.ClientID); ok {
		req.PayerName = c.Name
		req.PayerEmail = c.Email
	}

	res, err := u.gateway.CreateCheckout(ctx, req)
	if err != nil {
		u.log.Error("checkout creation failed", zap.String("budget_id", b.ID), zap.Error(err))
		return entities.PaymentLink{}, fmt.Errorf("%w: %w", ErrPaymentGateway, err)
	}

	u.log.Info("payment link created", zap.String("budget_id", b.ID), zap.String("preference_id", res.PreferenceID))
	return entities.PaymentLink{
		BudgetID:     b.ID,
		PreferenceID: res.PreferenceID,
		URL:          res.InitPoint,
		SandboxURL:   res.SandboxPoint,
		Amount:       b.TotalValue,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
