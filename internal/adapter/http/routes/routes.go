package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "vehicle_quotation/docs"
	"vehicle_quotation/internal/adapter/http/handlers"
	"vehicle_quotation/internal/adapter/http/middleware"
	"vehicle_quotation/internal/adapter/persistence"
	"vehicle_quotation/internal/domain/pricing"
	"vehicle_quotation/internal/infrastructure/config"
	"vehicle_quotation/internal/infrastructure/documents"
	"vehicle_quotation/internal/infrastructure/logging"
	"vehicle_quotation/internal/infrastructure/metrics"
	"vehicle_quotation/internal/usecase"
)

const (
	pathMetrics = "/metrics"
	companyName = "Vehicle Quotation"

	shutdownTimeout = 10 * time.Second
)

// Dependencies are the use cases and observability hooks the router is built from.
type Dependencies struct {
	Quotations usecase.IQuotationUseCase
	Catalog    usecase.ICatalogUseCase
	Log        *zap.Logger
	Metrics    *metrics.HTTP
	Gatherer   prometheus.Gatherer
}

// NewRouter mounts the API under /v1 together with swagger and metrics.
func NewRouter(deps Dependencies) *gin.Engine {
	log := logging.OrNop(deps.Log)

	router := gin.New()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging(log, pathMetrics))
	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Gatherer != nil {
		router.GET(pathMetrics, gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotationRoutes(v1, handlers.NewQuotationHandler(deps.Quotations, log))
	addCatalogRoutes(v1, handlers.NewCatalogHandler(deps.Catalog, log))
	return router
}

// BuildDependencies opens the configured storage and assembles the use cases.
func BuildDependencies(ctx context.Context, cfg config.Config, log *zap.Logger) (Dependencies, error) {
	repos, err := persistence.Open(ctx, cfg)
	if err != nil {
		return Dependencies{}, fmt.Errorf("open storage: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	resolver, err := pricing.NewResolver(cfg.PriceResolver, time.Now)
	if err != nil {
		return Dependencies{}, err
	}
	pipeline := pricing.NewPipeline(resolver)
	quotations := usecase.NewQuotationUseCase(
		repos.Quotations,
		repos.Customers,
		repos.Catalog,
		pipeline,
		documents.NewPDFRenderer(companyName, time.Now),
		usecase.WithLogger(log),
		usecase.WithMetrics(metrics.NewQuotation(cfg.MetricsNamespace, reg)),
	)

	return Dependencies{
		Quotations: quotations,
		Catalog:    usecase.NewCatalogUseCase(repos.Catalog, log),
		Log:        log,
		Metrics:    metrics.NewHTTP(cfg.MetricsNamespace, reg),
		Gatherer:   reg,
	}, nil
}

// Run serves the API until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	log = logging.OrNop(log)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	deps, err := BuildDependencies(ctx, cfg, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server listening",
			zap.String("addr", srv.Addr),
			zap.String("storage_driver", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("startup the application: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
