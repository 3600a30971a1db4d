package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/solvolt/heliora/internal/cache"
	"github.com/solvolt/heliora/internal/config"
	obsmetrics "github.com/solvolt/heliora/internal/observability/metrics"
	tariffdomain "github.com/solvolt/heliora/internal/tariff/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultHorizonYears = 25

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Cfg     config.Config
	Repo    tariffdomain.Repository
	Redis   *redis.Client       `optional:"true"`
	Metrics *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	repo    tariffdomain.Repository
	redis   *redis.Client
	local   cache.Cache[string, tariffdomain.Tariff]
	ttl     time.Duration
	metrics *obsmetrics.Metrics
}

func New(p Params) tariffdomain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("tariff.service"),
		repo:    p.Repo,
		redis:   p.Redis,
		local:   cache.NewTTLCache[string, tariffdomain.Tariff](),
		ttl:     time.Duration(p.Cfg.TariffCacheTTLSeconds) * time.Second,
		metrics: p.Metrics,
	}
}

func (s *Service) Rate(ctx context.Context, state string, flag tariffdomain.FlagColor) (*tariffdomain.RateResponse, error) {
	state = strings.ToUpper(strings.TrimSpace(state))
	if len(state) != 2 {
		return nil, tariffdomain.ErrInvalidState
	}

	tariff, err := s.lookup(ctx, state)
	if err != nil {
		return nil, err
	}
	if tariff == nil {
		return nil, tariffdomain.ErrNotFound
	}

	return &tariffdomain.RateResponse{
		UtilityCode:   tariff.UtilityCode,
		State:         tariff.State,
		Flag:          flag,
		KwhRate:       tariff.KwhRate,
		EffectiveRate: tariff.EffectiveRate(flag),
		ValidFrom:     tariff.ValidFrom,
	}, nil
}

func (s *Service) Simulate(ctx context.Context, req tariffdomain.SimulationRequest) (*tariffdomain.SimulationResult, error) {
	flag, err := tariffdomain.ParseFlagColor(req.Flag)
	if err != nil {
		return nil, err
	}
	if req.MonthlyConsumptionKwh <= 0 {
		return nil, tariffdomain.ErrInvalidConsumption
	}
	if req.SystemCost <= 0 {
		return nil, tariffdomain.ErrInvalidSystemCost
	}

	rate, err := s.Rate(ctx, req.State, flag)
	if err != nil {
		return nil, err
	}

	horizon := req.HorizonYears
	if horizon <= 0 {
		horizon = defaultHorizonYears
	}

	// Generation beyond the customer's own consumption earns no credit in
	// this simple model.
	offsetKwh := req.MonthlyGenerationKwh
	if offsetKwh > req.MonthlyConsumptionKwh {
		offsetKwh = req.MonthlyConsumptionKwh
	}

	monthlySavings := offsetKwh * rate.EffectiveRate
	paybackMonths := 0.0
	if monthlySavings > 0 {
		paybackMonths = req.SystemCost / monthlySavings
	}
	totalSavings := monthlySavings * 12 * float64(horizon)
	roi := (totalSavings - req.SystemCost) / req.SystemCost * 100

	return &tariffdomain.SimulationResult{
		State:                   rate.State,
		Flag:                    flag,
		EffectiveRate:           rate.EffectiveRate,
		MonthlySavings:          monthlySavings,
		PaybackMonths:           paybackMonths,
		HorizonYears:            horizon,
		TotalSavingsOverHorizon: totalSavings,
		ROIPercent:              roi,
	}, nil
}

// lookup resolves a tariff cache-aside: redis first, then the in-process TTL
// cache, then the database.
func (s *Service) lookup(ctx context.Context, state string) (*tariffdomain.Tariff, error) {
	key := "tariff:" + state

	if s.redis != nil {
		raw, err := s.redis.Get(ctx, key).Bytes()
		if err == nil {
			var cached tariffdomain.Tariff
			if err := json.Unmarshal(raw, &cached); err == nil {
				s.metrics.RecordTariffCache(ctx, true)
				return &cached, nil
			}
		} else if err != redis.Nil {
			s.log.Warn("tariff redis lookup failed", zap.Error(err))
		}
	}

	if cached, ok := s.local.Get(key); ok {
		s.metrics.RecordTariffCache(ctx, true)
		return &cached, nil
	}

	s.metrics.RecordTariffCache(ctx, false)
	tariff, err := s.repo.FindLatestByState(ctx, s.db, state)
	if err != nil {
		return nil, err
	}
	if tariff == nil {
		return nil, nil
	}

	s.local.Set(key, *tariff, s.ttl)
	if s.redis != nil {
		if raw, err := json.Marshal(tariff); err == nil {
			if err := s.redis.Set(ctx, key, raw, s.ttl).Err(); err != nil {
				s.log.Warn("tariff redis store failed", zap.Error(err))
			}
		}
	}

	return tariff, nil
}
