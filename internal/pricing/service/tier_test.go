package service

import (
	"testing"

	"github.com/solvolt/heliora/internal/config"
	distributordomain "github.com/solvolt/heliora/internal/distributor/domain"
	priceprofiledomain "github.com/solvolt/heliora/internal/priceprofile/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolveTierPrice_MultiplierSchedule(t *testing.T) {
	cfg := config.DefaultPricingConfig()
	profile := &priceprofiledomain.ProductPriceProfile{BasePrice: 1000}

	cases := []struct {
		tier       distributordomain.Tier
		wantPrice  float64
		wantFactor float64
	}{
		{distributordomain.TierBronze, 1000, 1.00},
		{distributordomain.TierSilver, 950, 0.95},
		{distributordomain.TierGold, 900, 0.90},
		{distributordomain.TierPlatinum, 850, 0.85},
	}
	for _, tc := range cases {
		price, multiplier := resolveTierPrice(profile, tc.tier, cfg)
		assert.InDelta(t, tc.wantPrice, price, 1e-9, "tier %s", tc.tier)
		assert.InDelta(t, tc.wantFactor, multiplier, 1e-9, "tier %s", tc.tier)
	}
}

func TestResolveTierPrice_ExplicitOverrideWins(t *testing.T) {
	cfg := config.DefaultPricingConfig()
	goldPrice := 880.0
	profile := &priceprofiledomain.ProductPriceProfile{
		BasePrice: 1000,
		GoldPrice: &goldPrice,
	}

	price, multiplier := resolveTierPrice(profile, distributordomain.TierGold, cfg)
	assert.InDelta(t, 880, price, 1e-9)
	assert.InDelta(t, 0.88, multiplier, 1e-9)

	// Other tiers still follow the schedule.
	price, multiplier = resolveTierPrice(profile, distributordomain.TierSilver, cfg)
	assert.InDelta(t, 950, price, 1e-9)
	assert.InDelta(t, 0.95, multiplier, 1e-9)
}

func TestResolveTierPrice_UnknownTierFallsBackToBase(t *testing.T) {
	cfg := config.DefaultPricingConfig()
	profile := &priceprofiledomain.ProductPriceProfile{BasePrice: 1000}

	price, multiplier := resolveTierPrice(profile, distributordomain.Tier("diamond"), cfg)
	assert.InDelta(t, 1000, price, 1e-9)
	assert.InDelta(t, 1.0, multiplier, 1e-9)
}

func TestResolveTierPrice_OverrideWithZeroBase(t *testing.T) {
	cfg := config.DefaultPricingConfig()
	override := 120.0
	profile := &priceprofiledomain.ProductPriceProfile{
		BasePrice:   0,
		BronzePrice: &override,
	}

	price, multiplier := resolveTierPrice(profile, distributordomain.TierBronze, cfg)
	assert.InDelta(t, 120, price, 1e-9)
	assert.InDelta(t, 1.0, multiplier, 1e-9)
}
