package service

import (
	"github.com/solvolt/heliora/internal/config"
	distributordomain "github.com/solvolt/heliora/internal/distributor/domain"
	priceprofiledomain "github.com/solvolt/heliora/internal/priceprofile/domain"
)

// resolveTierPrice returns the per-unit price for a distributor tier and the
// effective multiplier relative to the base price. An explicit per-tier
// override on the profile wins over the multiplier schedule.
func resolveTierPrice(profile *priceprofiledomain.ProductPriceProfile, tier distributordomain.Tier, cfg config.PricingConfig) (float64, float64) {
	if override := tierOverride(profile, tier); override != nil {
		multiplier := 1.0
		if profile.BasePrice > 0 {
			multiplier = *override / profile.BasePrice
		}
		return *override, multiplier
	}

	multiplier, ok := cfg.TierMultipliers[string(tier)]
	if !ok {
		multiplier = 1.0
	}
	return profile.BasePrice * multiplier, multiplier
}

func tierOverride(profile *priceprofiledomain.ProductPriceProfile, tier distributordomain.Tier) *float64 {
	switch tier {
	case distributordomain.TierBronze:
		return profile.BronzePrice
	case distributordomain.TierSilver:
		return profile.SilverPrice
	case distributordomain.TierGold:
		return profile.GoldPrice
	case distributordomain.TierPlatinum:
		return profile.PlatinumPrice
	default:
		return nil
	}
}
