package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"mixto_gestao/internal/config"
	"mixto_gestao/internal/logger"
	"mixto_gestao/internal/usecase/interfaces"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const mockCheckoutBaseURL = "https://sandbox.mercadopago.local/checkout"

// MercadoPagoGateway creates Checkout Pro preferences for budgets.
type MercadoPagoGateway struct {
	client   preference.Client
	mockMode bool
	log      *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway returns a gateway in mock mode when cfg.Mock is set.
func NewMercadoPagoGateway(cfg config.PaymentsConfig, log *zap.Logger) (*MercadoPagoGateway, error) {
	log = logger.OrNop(log).Named("payment.gateway")
	if cfg.Mock {
		log.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: log}, nil
	}

	if cfg.AccessToken == "" {
		log.Warn("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := mpconfig.New(cfg.AccessToken)
	if err != nil {
		log.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(sdkCfg), log: log}, nil
}

func (g *MercadoPagoGateway) CreateCheckout(ctx context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutResult, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		g.log.Info("mock checkout created",
			zap.String("external_reference", req.ExternalReference),
			zap.String("preference_id", id),
			zap.Float64("amount", req.Amount))
		url := fmt.Sprintf("%s?pref_id=%s", mockCheckoutBaseURL, id)
		return interfaces.CheckoutResult{PreferenceID: id, InitPoint: url, SandboxPoint: url}, nil
	}

	if g == nil || g.client == nil {
		return interfaces.CheckoutResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	request := preference.Request{
		ExternalReference: req.ExternalReference,
		Items: []preference.ItemRequest{{
			ID:          req.ExternalReference,
			Title:       req.Title,
			Description: req.Description,
			CurrencyID:  req.CurrencyID,
			Quantity:    1,
			UnitPrice:   req.Amount,
		}},
	}
	if req.PayerEmail != "" || req.PayerName != "" {
		request.Payer = &preference.PayerRequest{Name: req.PayerName, Email: req.PayerEmail}
	}

	g.log.Info("create checkout start", zap.String("external_reference", req.ExternalReference), zap.Float64("amount", req.Amount))
	resp, err := g.client.Create(ctx, request)
	if err != nil {
		g.log.Error("sdk create failed", zap.String("external_reference", req.ExternalReference), zap.Error(err))
		return interfaces.CheckoutResult{}, err
	}
	g.log.Info("create checkout success", zap.String("external_reference", req.ExternalReference), zap.String("preference_id", resp.ID))

	return interfaces.CheckoutResult{
		PreferenceID: resp.ID,
		InitPoint:    resp.InitPoint,
		SandboxPoint: resp.SandboxInitPoint,
	}, nil
}
