package service

import (
	"context"
	"math"

	solardomain "github.com/solvolt/heliora/internal/solar/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	defaultLossFraction    = 0.18
	defaultDegradationRate = 0.005
	defaultHorizonYears    = 25
	daysPerMonth           = 30.0
)

type Params struct {
	fx.In

	Log *zap.Logger
}

type Service struct {
	log *zap.Logger
}

func New(p Params) solardomain.Service {
	return &Service{
		log: p.Log.Named("solar.service"),
	}
}

// Estimate projects generation with the closed-form irradiance model:
// monthly kWh = irradiance x kWp x (1 - losses) x 30. Degradation across the
// horizon is a geometric series on the annual output.
func (s *Service) Estimate(ctx context.Context, req solardomain.EstimateRequest) (*solardomain.EstimateResult, error) {
	_ = ctx

	if req.IrradianceKwhM2Day <= 0 {
		return nil, solardomain.ErrInvalidIrradiance
	}
	if req.SystemSizeKwp <= 0 {
		return nil, solardomain.ErrInvalidSystemSize
	}
	loss := req.SystemLossFraction
	if loss == 0 {
		loss = defaultLossFraction
	}
	if loss < 0 || loss >= 1 {
		return nil, solardomain.ErrInvalidLossFactor
	}

	degradation := req.AnnualDegradationRate
	if degradation == 0 {
		degradation = defaultDegradationRate
	}
	horizon := req.HorizonYears
	if horizon <= 0 {
		horizon = defaultHorizonYears
	}

	monthly := req.IrradianceKwhM2Day * req.SystemSizeKwp * (1 - loss) * daysPerMonth
	annual := monthly * 12

	retention := 1 - degradation
	lifetime := annual * float64(horizon)
	if degradation > 0 {
		// Sum of annual * retention^y for y in [0, horizon).
		lifetime = annual * (1 - math.Pow(retention, float64(horizon))) / degradation
	}
	finalYear := annual * math.Pow(retention, float64(horizon-1))

	return &solardomain.EstimateResult{
		MonthlyGenerationKwh:   monthly,
		AnnualGenerationKwh:    annual,
		HorizonYears:           horizon,
		LifetimeGenerationKwh:  lifetime,
		FinalYearGenerationKwh: finalYear,
	}, nil
}

// Recommend sizes a system that covers the monthly consumption target.
func (s *Service) Recommend(ctx context.Context, req solardomain.RecommendRequest) (*solardomain.Recommendation, error) {
	_ = ctx

	if req.MonthlyConsumptionKwh <= 0 {
		return nil, solardomain.ErrInvalidConsumption
	}
	if req.IrradianceKwhM2Day <= 0 {
		return nil, solardomain.ErrInvalidIrradiance
	}
	if req.PanelWatts <= 0 {
		return nil, solardomain.ErrInvalidPanelWatts
	}
	loss := req.SystemLossFraction
	if loss == 0 {
		loss = defaultLossFraction
	}
	if loss < 0 || loss >= 1 {
		return nil, solardomain.ErrInvalidLossFactor
	}

	kwp := req.MonthlyConsumptionKwh / (req.IrradianceKwhM2Day * (1 - loss) * daysPerMonth)
	panelCount := int(math.Ceil(kwp * 1000 / float64(req.PanelWatts)))
	actualKwp := float64(panelCount) * float64(req.PanelWatts) / 1000
	monthly := req.IrradianceKwhM2Day * actualKwp * (1 - loss) * daysPerMonth

	return &solardomain.Recommendation{
		SystemSizeKwp:        actualKwp,
		PanelCount:           panelCount,
		MonthlyGenerationKwh: monthly,
	}, nil
}
