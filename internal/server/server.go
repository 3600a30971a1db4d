package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/solvolt/heliora/internal/approval"
	approvaldomain "github.com/solvolt/heliora/internal/approval/domain"
	"github.com/solvolt/heliora/internal/cache"
	"github.com/solvolt/heliora/internal/clock"
	"github.com/solvolt/heliora/internal/config"
	"github.com/solvolt/heliora/internal/distributor"
	distributordomain "github.com/solvolt/heliora/internal/distributor/domain"
	"github.com/solvolt/heliora/internal/financing"
	financingdomain "github.com/solvolt/heliora/internal/financing/domain"
	"github.com/solvolt/heliora/internal/observability"
	obslogger "github.com/solvolt/heliora/internal/observability/logger"
	obsmetrics "github.com/solvolt/heliora/internal/observability/metrics"
	obstracing "github.com/solvolt/heliora/internal/observability/tracing"
	"github.com/solvolt/heliora/internal/priceprofile"
	"github.com/solvolt/heliora/internal/pricing"
	pricingdomain "github.com/solvolt/heliora/internal/pricing/domain"
	"github.com/solvolt/heliora/internal/pricingrule"
	"github.com/solvolt/heliora/internal/ratelimit"
	"github.com/solvolt/heliora/internal/solar"
	solardomain "github.com/solvolt/heliora/internal/solar/domain"
	"github.com/solvolt/heliora/internal/tariff"
	tariffdomain "github.com/solvolt/heliora/internal/tariff/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	config.Module,
	clock.Module,
	cache.Module,
	ratelimit.Module,
	fx.Provide(registerGin),
	distributor.Module,
	priceprofile.Module,
	pricingrule.Module,
	pricing.Module,
	tariff.Module,
	solar.Module,
	approval.Module,
	financing.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, obsCfg observability.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(log, obslogger.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(log *zap.Logger, obsCfg observability.Config) *gin.Engine {
	return NewEngine(log, obsCfg)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine         *gin.Engine
	cfg            config.Config
	clk            clock.Clock
	pricingSvc     pricingdomain.Service
	distributorSvc distributordomain.Service
	tariffSvc      tariffdomain.Service
	solarSvc       solardomain.Service
	approvalSvc    approvaldomain.Service
	financingSvc   financingdomain.Service
	batchLimiter   *ratelimit.BatchLimiter
	obsMetrics     *obsmetrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin            *gin.Engine
	Cfg            config.Config
	Clock          clock.Clock
	PricingSvc     pricingdomain.Service
	DistributorSvc distributordomain.Service
	TariffSvc      tariffdomain.Service
	SolarSvc       solardomain.Service
	ApprovalSvc    approvaldomain.Service
	FinancingSvc   financingdomain.Service
	BatchLimiter   *ratelimit.BatchLimiter `optional:"true"`
	ObsMetrics     *obsmetrics.Metrics     `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:         p.Gin,
		cfg:            p.Cfg,
		clk:            p.Clock,
		pricingSvc:     p.PricingSvc,
		distributorSvc: p.DistributorSvc,
		tariffSvc:      p.TariffSvc,
		solarSvc:       p.SolarSvc,
		approvalSvc:    p.ApprovalSvc,
		financingSvc:   p.FinancingSvc,
		batchLimiter:   p.BatchLimiter,
		obsMetrics:     p.ObsMetrics,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Pricing --------
	api.POST("/pricing/calculate", s.CalculatePricing)
	api.POST("/pricing/batch-calculate", s.BatchCalculatePricing)

	// -------- Distributors --------
	api.GET("/distributors", s.ListDistributors)
	api.GET("/distributors/:code", s.GetDistributorByCode)

	// -------- Tariffs --------
	api.GET("/tariffs/:state", s.GetTariffRate)
	api.POST("/tariffs/simulate", s.SimulateTariffSavings)

	// -------- Solar --------
	api.POST("/solar/estimate", s.EstimateSolarGeneration)
	api.POST("/solar/recommend", s.RecommendSolarSystem)

	// -------- Financing --------
	api.POST("/financing/simulate", s.SimulateFinancing)

	// -------- Approvals --------
	api.POST("/approvals/evaluate", s.EvaluateApproval)
}
