package service

import (
	"context"
	"math"
	"testing"

	solardomain "github.com/solvolt/heliora/internal/solar/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSolarService() solardomain.Service {
	return New(Params{Log: zap.NewNop()})
}

func TestEstimate_GenerationFormula(t *testing.T) {
	svc := newSolarService()

	// 5.2 kWh/m²/day, 10 kWp, 18% losses: 5.2 * 10 * 0.82 * 30 = 1279.2.
	result, err := svc.Estimate(context.Background(), solardomain.EstimateRequest{
		IrradianceKwhM2Day: 5.2,
		SystemSizeKwp:      10,
	})
	require.NoError(t, err)

	assert.InDelta(t, 1279.2, result.MonthlyGenerationKwh, 1e-6)
	assert.InDelta(t, 15350.4, result.AnnualGenerationKwh, 1e-6)
	assert.Equal(t, 25, result.HorizonYears)

	// Geometric series over 25 years at 0.5% annual degradation.
	annual := 15350.4
	wantLifetime := annual * (1 - math.Pow(0.995, 25)) / 0.005
	assert.InDelta(t, wantLifetime, result.LifetimeGenerationKwh, 1e-6)
	assert.InDelta(t, annual*math.Pow(0.995, 24), result.FinalYearGenerationKwh, 1e-6)
	assert.Less(t, result.FinalYearGenerationKwh, result.AnnualGenerationKwh)
}

func TestEstimate_Validation(t *testing.T) {
	svc := newSolarService()

	_, err := svc.Estimate(context.Background(), solardomain.EstimateRequest{SystemSizeKwp: 10})
	assert.ErrorIs(t, err, solardomain.ErrInvalidIrradiance)

	_, err = svc.Estimate(context.Background(), solardomain.EstimateRequest{IrradianceKwhM2Day: 5})
	assert.ErrorIs(t, err, solardomain.ErrInvalidSystemSize)

	_, err = svc.Estimate(context.Background(), solardomain.EstimateRequest{
		IrradianceKwhM2Day: 5,
		SystemSizeKwp:      10,
		SystemLossFraction: 1.2,
	})
	assert.ErrorIs(t, err, solardomain.ErrInvalidLossFactor)
}

func TestRecommend_SizesToConsumption(t *testing.T) {
	svc := newSolarService()

	result, err := svc.Recommend(context.Background(), solardomain.RecommendRequest{
		MonthlyConsumptionKwh: 500,
		IrradianceKwhM2Day:    5.0,
		PanelWatts:            550,
	})
	require.NoError(t, err)

	// Required: 500 / (5.0 * 0.82 * 30) = 4.065 kWp → 8 panels of 550 W.
	assert.Equal(t, 8, result.PanelCount)
	assert.InDelta(t, 4.4, result.SystemSizeKwp, 1e-9)
	// The sized system must actually cover the target.
	assert.GreaterOrEqual(t, result.MonthlyGenerationKwh, 500.0)
}

func TestRecommend_Validation(t *testing.T) {
	svc := newSolarService()

	_, err := svc.Recommend(context.Background(), solardomain.RecommendRequest{
		IrradianceKwhM2Day: 5, PanelWatts: 550,
	})
	assert.ErrorIs(t, err, solardomain.ErrInvalidConsumption)

	_, err = svc.Recommend(context.Background(), solardomain.RecommendRequest{
		MonthlyConsumptionKwh: 500, PanelWatts: 550,
	})
	assert.ErrorIs(t, err, solardomain.ErrInvalidIrradiance)

	_, err = svc.Recommend(context.Background(), solardomain.RecommendRequest{
		MonthlyConsumptionKwh: 500, IrradianceKwhM2Day: 5,
	})
	assert.ErrorIs(t, err, solardomain.ErrInvalidPanelWatts)
}
