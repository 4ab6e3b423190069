package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"mixto_gestao/internal/adapter/http/routes"
	"mixto_gestao/internal/bootstrap"
	"mixto_gestao/internal/config"
	"mixto_gestao/internal/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Mixto Gestão API
// @version         1.0
// @description     Clients, catalog, budgets, project tasks, reports and payments for a renovation company.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to start application", zap.Error(err))
	}
	defer app.Close()

	if err := routes.Run(ctx, app); err != nil {
		zl.Error("http server stopped", zap.Error(err))
	}
}
