package service

import (
	"context"
	"testing"

	financingdomain "github.com/solvolt/heliora/internal/financing/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFinancingService() financingdomain.Service {
	return New(Params{Log: zap.NewNop()})
}

func TestSimulate_PriceTableInstallment(t *testing.T) {
	svc := newFinancingService()

	result, err := svc.Simulate(context.Background(), financingdomain.SimulationRequest{
		Amount:             10000,
		MonthlyRatePercent: 1.5,
		TermsMonths:        []int{12},
	})
	require.NoError(t, err)
	require.Len(t, result.Options, 1)

	opt := result.Options[0]
	assert.Equal(t, 12, opt.TermMonths)
	// Annuity at 1.5%/month over 12 months.
	assert.InDelta(t, 916.80, opt.MonthlyInstallment, 0.01)
	assert.InDelta(t, opt.MonthlyInstallment*12, opt.TotalPaid, 1e-9)
	assert.InDelta(t, opt.TotalPaid-10000, opt.TotalInterest, 1e-9)
	assert.InDelta(t, opt.TotalInterest/10000*100, opt.CostPercent, 1e-9)
}

func TestSimulate_ZeroRateSplitsEvenly(t *testing.T) {
	svc := newFinancingService()

	result, err := svc.Simulate(context.Background(), financingdomain.SimulationRequest{
		Amount:      12000,
		TermsMonths: []int{24},
	})
	require.NoError(t, err)
	require.Len(t, result.Options, 1)

	opt := result.Options[0]
	assert.InDelta(t, 500, opt.MonthlyInstallment, 1e-9)
	assert.InDelta(t, 12000, opt.TotalPaid, 1e-9)
	assert.Zero(t, opt.TotalInterest)
	assert.Zero(t, opt.CostPercent)
}

func TestSimulate_DefaultTermsSortedAscending(t *testing.T) {
	svc := newFinancingService()

	result, err := svc.Simulate(context.Background(), financingdomain.SimulationRequest{
		Amount:             20000,
		MonthlyRatePercent: 1.2,
	})
	require.NoError(t, err)
	require.Len(t, result.Options, 5)

	for i := 1; i < len(result.Options); i++ {
		assert.Greater(t, result.Options[i].TermMonths, result.Options[i-1].TermMonths)
		// Longer terms cost more in total.
		assert.Greater(t, result.Options[i].TotalPaid, result.Options[i-1].TotalPaid)
		// But each installment is smaller.
		assert.Less(t, result.Options[i].MonthlyInstallment, result.Options[i-1].MonthlyInstallment)
	}
}

func TestSimulate_Validation(t *testing.T) {
	svc := newFinancingService()

	_, err := svc.Simulate(context.Background(), financingdomain.SimulationRequest{})
	assert.ErrorIs(t, err, financingdomain.ErrInvalidAmount)

	_, err = svc.Simulate(context.Background(), financingdomain.SimulationRequest{
		Amount:             1000,
		MonthlyRatePercent: -1,
	})
	assert.ErrorIs(t, err, financingdomain.ErrInvalidRate)

	_, err = svc.Simulate(context.Background(), financingdomain.SimulationRequest{
		Amount:      1000,
		TermsMonths: []int{12, 0},
	})
	assert.ErrorIs(t, err, financingdomain.ErrInvalidTerm)
}
