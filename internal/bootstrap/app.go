// Package bootstrap wires configuration, storage and use cases into an App
// shared by the HTTP server and the CLI.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"mixto_gestao/internal/adapter/persistence/repository"
	"mixto_gestao/internal/config"
	"mixto_gestao/internal/infrastructure/assistant"
	"mixto_gestao/internal/infrastructure/payments"
	"mixto_gestao/internal/infrastructure/reports"
	"mixto_gestao/internal/logger"
	"mixto_gestao/internal/usecase"
	"mixto_gestao/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type App struct {
	Config config.Config
	Log    *zap.Logger

	Workspace    *usecase.Workspace
	Clients      usecase.IClientUseCase
	Catalog      usecase.ICatalogUseCase
	Budgets      usecase.IBudgetUseCase
	Tasks        usecase.ITaskUseCase
	Stats        usecase.IStatsUseCase
	Reports      usecase.IReportUseCase
	Assistant    usecase.IAssistantUseCase
	PaymentLinks usecase.IPaymentLinkUseCase

	closers []func() error
}

// New opens the configured store and builds every use case on top of it.
func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	log = logger.OrNop(log)

	store, closer, err := OpenStore(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}
	log.Info("storage ready", zap.String("driver", cfg.Storage.Driver))

	app, err := NewWithStore(ctx, cfg, store, log)
	if err != nil {
		if closer != nil {
			_ = closer()
		}
		return nil, err
	}
	if closer != nil {
		app.closers = append(app.closers, closer)
	}
	return app, nil
}

// NewWithStore builds the App over an already opened document store.
func NewWithStore(ctx context.Context, cfg config.Config, store interfaces.IDocumentStore, log *zap.Logger) (*App, error) {
	log = logger.OrNop(log)

	repo := repository.NewDocumentRepository(store, cfg.Storage.KeyPrefix, cfg.SeedDemoData, log)
	ws, err := usecase.NewWorkspace(ctx, repo, log)
	if err != nil {
		return nil, fmt.Errorf("loading data: %w", err)
	}

	// A nil gateway still satisfies the interface and reports itself as
	// not configured on every call.
	gateway, err := payments.NewMercadoPagoGateway(cfg.Payments, log)
	if err != nil {
		log.Warn("Mercado Pago gateway not configured", zap.Error(err))
	}

	budgets := usecase.NewBudgetUseCase(ws, log)
	stats := usecase.NewStatsUseCase(ws)

	return &App{
		Config:       cfg,
		Log:          log,
		Workspace:    ws,
		Clients:      usecase.NewClientUseCase(ws),
		Catalog:      usecase.NewCatalogUseCase(ws),
		Budgets:      budgets,
		Tasks:        usecase.NewTaskUseCase(ws),
		Stats:        stats,
		Reports:      usecase.NewReportUseCase(ws, budgets, reports.NewRenderer(cfg.Company), log),
		Assistant:    usecase.NewAssistantUseCase(stats, assistant.NewGeminiClient(cfg.Assistant), cfg.Company.Name, log),
		PaymentLinks: usecase.NewPaymentLinkUseCase(ws, budgets, gateway, cfg.Payments.Currency, log),
	}, nil
}

// Close releases storage connections.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
