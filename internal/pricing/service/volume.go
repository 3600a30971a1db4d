package service

import (
	"github.com/solvolt/heliora/internal/config"
	priceprofiledomain "github.com/solvolt/heliora/internal/priceprofile/domain"
)

type volumeBreakpoint struct {
	qty           *int
	price         *float64
	fallbackRatio float64
}

// resolveVolumeDiscount returns the absolute per-unit discount and the
// discount percentage for the ordered quantity. Breakpoints are evaluated
// highest threshold first and do not stack; a matched breakpoint without a
// configured price falls back to the ratio schedule.
func resolveVolumeDiscount(profile *priceprofiledomain.ProductPriceProfile, quantity int, tierPrice float64, cfg config.PricingConfig) (float64, float64) {
	breakpoints := []volumeBreakpoint{
		{qty: profile.VolumeTier3Qty, price: profile.VolumeTier3Price, fallbackRatio: cfg.VolumeFallbackRatios.Tier3},
		{qty: profile.VolumeTier2Qty, price: profile.VolumeTier2Price, fallbackRatio: cfg.VolumeFallbackRatios.Tier2},
		{qty: profile.VolumeTier1Qty, price: profile.VolumeTier1Price, fallbackRatio: cfg.VolumeFallbackRatios.Tier1},
	}

	for _, bp := range breakpoints {
		if bp.qty == nil || quantity < *bp.qty {
			continue
		}

		discounted := tierPrice * bp.fallbackRatio
		if bp.price != nil {
			discounted = *bp.price
		}

		amount := tierPrice - discounted
		if amount <= 0 {
			return 0, 0
		}
		percent := 0.0
		if tierPrice > 0 {
			percent = amount / tierPrice * 100
		}
		return amount, percent
	}

	return 0, 0
}
