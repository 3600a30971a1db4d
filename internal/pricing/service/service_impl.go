package service

import (
	"context"
	"strings"

	"github.com/solvolt/heliora/internal/clock"
	"github.com/solvolt/heliora/internal/config"
	distributordomain "github.com/solvolt/heliora/internal/distributor/domain"
	obsmetrics "github.com/solvolt/heliora/internal/observability/metrics"
	priceprofiledomain "github.com/solvolt/heliora/internal/priceprofile/domain"
	pricingdomain "github.com/solvolt/heliora/internal/pricing/domain"
	pricingruledomain "github.com/solvolt/heliora/internal/pricingrule/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB              *gorm.DB
	Log             *zap.Logger
	Clock           clock.Clock
	PricingCfg      *config.PricingConfigHolder
	ProfileRepo     priceprofiledomain.Repository
	RuleRepo        pricingruledomain.Repository
	DistributorRepo distributordomain.Repository
	Metrics         *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db              *gorm.DB
	log             *zap.Logger
	clock           clock.Clock
	pricingCfg      *config.PricingConfigHolder
	profileRepo     priceprofiledomain.Repository
	ruleRepo        pricingruledomain.Repository
	distributorRepo distributordomain.Repository
	metrics         *obsmetrics.Metrics
}

func New(p Params) pricingdomain.Service {
	return &Service{
		db:              p.DB,
		log:             p.Log.Named("pricing.service"),
		clock:           p.Clock,
		pricingCfg:      p.PricingCfg,
		profileRepo:     p.ProfileRepo,
		ruleRepo:        p.RuleRepo,
		distributorRepo: p.DistributorRepo,
		metrics:         p.Metrics,
	}
}

// Calculate runs one pricing calculation: profile load, tier price, volume
// discount, rule engine, result assembly. Every step after loading operates
// on read-only snapshots; nothing is written.
func (s *Service) Calculate(ctx context.Context, req pricingdomain.CalculateRequest) (*pricingdomain.Result, error) {
	productID := strings.TrimSpace(req.ProductID)
	if productID == "" {
		return nil, pricingdomain.ErrInvalidProduct
	}
	distributorCode := strings.ToLower(strings.TrimSpace(req.DistributorCode))
	if distributorCode == "" {
		return nil, pricingdomain.ErrInvalidDistributor
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, pricingdomain.ErrInvalidQuantity
	}

	distributor, err := s.distributorRepo.FindByCode(ctx, s.db, distributorCode)
	if err != nil {
		return nil, err
	}
	if distributor == nil {
		s.metrics.RecordCalculation(ctx, distributorCode, "distributor_not_found")
		return nil, distributordomain.ErrNotFound
	}

	tier, err := s.resolveTier(req.DistributorTier, distributor)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.FindByProductAndDistributor(ctx, s.db, productID, distributorCode)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		s.metrics.RecordCalculation(ctx, distributorCode, "profile_not_found")
		return nil, priceprofiledomain.ErrNotFound
	}

	rules, err := s.ruleRepo.ListActive(ctx, s.db, distributorCode)
	if err != nil {
		return nil, err
	}

	result := s.assemble(req, quantity, tier, distributor, profile, rules)

	s.metrics.RecordCalculation(ctx, distributorCode, "ok")
	s.metrics.RecordRulesApplied(ctx, len(result.AppliedRules))
	s.log.Debug("pricing calculated",
		zap.String("product_id", productID),
		zap.String("distributor", distributorCode),
		zap.Int("quantity", quantity),
		zap.Float64("final_unit_price", result.FinalUnitPrice),
		zap.Int("rules_applied", len(result.AppliedRules)),
	)

	return result, nil
}

func (s *Service) resolveTier(requested string, distributor *distributordomain.Distributor) (distributordomain.Tier, error) {
	if strings.TrimSpace(requested) != "" {
		return distributordomain.ParseTier(requested)
	}
	if distributor.Tier != "" {
		return distributordomain.ParseTier(string(distributor.Tier))
	}
	return distributordomain.TierBronze, nil
}

// assemble combines tier, volume and rule outputs into the final result.
func (s *Service) assemble(
	req pricingdomain.CalculateRequest,
	quantity int,
	tier distributordomain.Tier,
	distributor *distributordomain.Distributor,
	profile *priceprofiledomain.ProductPriceProfile,
	rules []pricingruledomain.PricingRule,
) *pricingdomain.Result {
	cfg := s.pricingCfg.Get()

	tierPrice, tierMultiplier := resolveTierPrice(profile, tier, cfg)
	volumeAmount, volumePercent := resolveVolumeDiscount(profile, quantity, tierPrice, cfg)
	entryPrice := tierPrice - volumeAmount

	region := strings.TrimSpace(req.RegionCode)
	if region == "" {
		region = distributor.RegionCode
	}

	finalUnit, applied := applyRules(rules, ruleContext{
		Quantity:      quantity,
		Tier:          tier,
		RegionCode:    region,
		PaymentMethod: req.PaymentMethod,
		Certified:     profile.InmetroCertified,
		QualityScore:  profile.QualityScore,
		Now:           s.clock.Now(),
	}, entryPrice)

	cumulative := 0.0
	if entryPrice > 0 {
		cumulative = (entryPrice - finalUnit) / entryPrice * 100
	}

	currency := strings.ToUpper(strings.TrimSpace(req.CurrencyCode))
	if currency == "" {
		currency = profile.CurrencyCode
	}

	delivery := profile.LeadTimeDays
	if distributor.AvgDeliveryDays != nil {
		delivery = *distributor.AvgDeliveryDays
	}

	return &pricingdomain.Result{
		ProductID:                 profile.ProductID,
		DistributorCode:           distributor.Code,
		Tier:                      tier,
		Quantity:                  quantity,
		BasePrice:                 profile.BasePrice,
		TierMultiplier:            tierMultiplier,
		TierPrice:                 tierPrice,
		VolumeDiscountPercent:     volumePercent,
		VolumeDiscountAmount:      volumeAmount,
		AppliedRules:              applied,
		CumulativeDiscountPercent: cumulative,
		FinalUnitPrice:            finalUnit,
		FinalLinePrice:            finalUnit * float64(quantity),
		CurrencyCode:              currency,
		InmetroCertified:          profile.InmetroCertified,
		DeliveryEstimateDays:      delivery,
	}
}
