package service

import (
	"testing"

	"github.com/solvolt/heliora/internal/config"
	priceprofiledomain "github.com/solvolt/heliora/internal/priceprofile/domain"
	"github.com/stretchr/testify/assert"
)

func volumeProfile() *priceprofiledomain.ProductPriceProfile {
	q1, p1 := 10, 855.0
	q2, p2 := 50, 810.0
	q3, p3 := 100, 765.0
	return &priceprofiledomain.ProductPriceProfile{
		BasePrice:        1000,
		VolumeTier1Qty:   &q1,
		VolumeTier1Price: &p1,
		VolumeTier2Qty:   &q2,
		VolumeTier2Price: &p2,
		VolumeTier3Qty:   &q3,
		VolumeTier3Price: &p3,
	}
}

func TestResolveVolumeDiscount_HighestBreakpointWins(t *testing.T) {
	cfg := config.DefaultPricingConfig()
	profile := volumeProfile()

	cases := []struct {
		quantity    int
		wantAmount  float64
		wantPercent float64
	}{
		{1, 0, 0},
		{9, 0, 0},
		{10, 45, 5},
		{49, 45, 5},
		{50, 90, 10},
		{99, 90, 10},
		{100, 135, 15},
		{500, 135, 15},
	}
	for _, tc := range cases {
		amount, percent := resolveVolumeDiscount(profile, tc.quantity, 900, cfg)
		assert.InDelta(t, tc.wantAmount, amount, 1e-9, "qty %d", tc.quantity)
		assert.InDelta(t, tc.wantPercent, percent, 1e-9, "qty %d", tc.quantity)
	}
}

func TestResolveVolumeDiscount_FallbackRatioWhenPriceUnset(t *testing.T) {
	cfg := config.DefaultPricingConfig()
	q2 := 50
	profile := &priceprofiledomain.ProductPriceProfile{
		BasePrice:      1000,
		VolumeTier2Qty: &q2,
	}

	// Ratio schedule: tier2 = 0.90, so 900 * 0.90 = 810, discount 90.
	amount, percent := resolveVolumeDiscount(profile, 60, 900, cfg)
	assert.InDelta(t, 90, amount, 1e-9)
	assert.InDelta(t, 10, percent, 1e-9)
}

func TestResolveVolumeDiscount_NeverNegative(t *testing.T) {
	cfg := config.DefaultPricingConfig()
	q1, p1 := 10, 950.0
	profile := &priceprofiledomain.ProductPriceProfile{
		BasePrice:        1000,
		VolumeTier1Qty:   &q1,
		VolumeTier1Price: &p1,
	}

	// Breakpoint price above the tier price must not produce a markup.
	amount, percent := resolveVolumeDiscount(profile, 20, 900, cfg)
	assert.Zero(t, amount)
	assert.Zero(t, percent)
}

func TestResolveVolumeDiscount_NoBreakpointsConfigured(t *testing.T) {
	cfg := config.DefaultPricingConfig()
	profile := &priceprofiledomain.ProductPriceProfile{BasePrice: 1000}

	amount, percent := resolveVolumeDiscount(profile, 1000, 900, cfg)
	assert.Zero(t, amount)
	assert.Zero(t, percent)
}
