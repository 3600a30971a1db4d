package service

import (
	"sort"
	"strings"
	"time"

	distributordomain "github.com/solvolt/heliora/internal/distributor/domain"
	pricingdomain "github.com/solvolt/heliora/internal/pricing/domain"
	pricingruledomain "github.com/solvolt/heliora/internal/pricingrule/domain"
)

// ruleContext carries the facts a rule's conditions are evaluated against.
type ruleContext struct {
	Quantity      int
	Tier          distributordomain.Tier
	RegionCode    string
	PaymentMethod string
	Certified     bool
	QualityScore  float64
	Now           time.Time
}

// applyRules runs the candidate rules against price in priority-descending
// order. A rule applies when every configured condition holds; an unset
// condition is vacuously true. A non-stackable applied rule terminates
// evaluation. The returned price is clamped to zero.
func applyRules(rules []pricingruledomain.PricingRule, rctx ruleContext, price float64) (float64, []pricingdomain.AppliedRule) {
	sorted := make([]pricingruledomain.PricingRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})

	applied := make([]pricingdomain.AppliedRule, 0, len(sorted))
	for i := range sorted {
		rule := &sorted[i]
		if !ruleMatches(rule, rctx) {
			continue
		}

		before := price
		price = applyAdjustment(rule, price)
		applied = append(applied, pricingdomain.AppliedRule{
			Code:       rule.Code,
			Name:       rule.Name,
			Method:     rule.Method,
			Value:      rule.Value,
			Priority:   rule.Priority,
			Adjustment: price - before,
			PriceAfter: price,
		})

		if !rule.Stackable {
			break
		}
	}

	if price < 0 {
		price = 0
	}
	return price, applied
}

func applyAdjustment(rule *pricingruledomain.PricingRule, price float64) float64 {
	switch rule.Method {
	case pricingruledomain.Percentage:
		return price - price*rule.Value/100
	case pricingruledomain.FixedAmount:
		return price - rule.Value
	case pricingruledomain.Multiplier:
		return price * rule.Value
	case pricingruledomain.Override:
		return rule.Value
	default:
		return price
	}
}

func ruleMatches(rule *pricingruledomain.PricingRule, rctx ruleContext) bool {
	if rule.MinQuantity != nil && rctx.Quantity < *rule.MinQuantity {
		return false
	}
	if rule.MaxQuantity != nil && rctx.Quantity > *rule.MaxQuantity {
		return false
	}
	if len(rule.Tiers) > 0 && !containsFold(rule.Tiers, string(rctx.Tier)) {
		return false
	}
	if len(rule.Regions) > 0 && !containsFold(rule.Regions, rctx.RegionCode) {
		return false
	}
	if len(rule.PaymentMethods) > 0 && !containsFold(rule.PaymentMethods, rctx.PaymentMethod) {
		return false
	}
	if rule.RequiresCertification && !rctx.Certified {
		return false
	}
	if rule.MinQualityScore != nil && rctx.QualityScore < *rule.MinQualityScore {
		return false
	}
	return temporalMatches(rule, rctx.Now)
}

// temporalMatches evaluates the rule's schedule window in UTC.
func temporalMatches(rule *pricingruledomain.PricingRule, now time.Time) bool {
	now = now.UTC()

	if rule.StartsAt != nil && now.Before(*rule.StartsAt) {
		return false
	}
	if rule.EndsAt != nil && now.After(*rule.EndsAt) {
		return false
	}
	if len(rule.ActiveWeekdays) > 0 {
		weekday := int(now.Weekday())
		found := false
		for _, d := range rule.ActiveWeekdays {
			if d == weekday {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if rule.ActiveHourFrom != nil && rule.ActiveHourTo != nil {
		hour := now.Hour()
		from, to := *rule.ActiveHourFrom, *rule.ActiveHourTo
		if from <= to {
			if hour < from || hour >= to {
				return false
			}
		} else {
			// Window wraps midnight, e.g. 22-6.
			if hour < from && hour >= to {
				return false
			}
		}
	}
	return true
}

func containsFold(values []string, target string) bool {
	target = strings.TrimSpace(target)
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}
