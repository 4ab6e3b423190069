package routes

import (
	"context"
	"errors"
	_ "mixto_gestao/docs" // swagger spec
	"mixto_gestao/internal/adapter/http/handlers"
	"mixto_gestao/internal/adapter/http/middleware"
	"mixto_gestao/internal/bootstrap"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// NewRouter builds the engine with every route registered.
func NewRouter(app *bootstrap.App) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, app.Log)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	reports := handlers.NewReportHandler(app.Reports)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClientRoutes(v1, handlers.NewClientHandler(app.Clients))
	addCatalogRoutes(v1, handlers.NewCatalogHandler(app.Catalog))
	addBudgetRoutes(v1, budgetHandlers{
		budgets:  handlers.NewBudgetHandler(app.Budgets),
		tasks:    handlers.NewTaskHandler(app.Tasks),
		reports:  reports,
		payments: handlers.NewPaymentLinkHandler(app.PaymentLinks),
	})
	addReportRoutes(v1, reports)
	addInsightRoutes(v1, handlers.NewStatsHandler(app.Stats), handlers.NewAssistantHandler(app.Assistant))

	return router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, app *bootstrap.App) error {
	gin.SetMode(app.Config.Server.GinMode)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(app.Config.Server.Port),
		Handler:           NewRouter(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.Log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.Log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORSMiddleware())
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}
