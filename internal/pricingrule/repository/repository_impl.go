package repository

import (
	"context"
	"strings"

	pricingruledomain "github.com/solvolt/heliora/internal/pricingrule/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() pricingruledomain.Repository {
	return &repo{}
}

func (r *repo) ListActive(ctx context.Context, db *gorm.DB, distributorCode string) ([]pricingruledomain.PricingRule, error) {
	var items []pricingruledomain.PricingRule
	err := db.WithContext(ctx).Raw(
		`SELECT id, distributor_code, code, name, application_method, value,
		 priority, stackable, min_quantity, max_quantity, tiers, regions,
		 payment_methods, requires_certification, min_quality_score,
		 starts_at, ends_at, active_weekdays, active_hour_from, active_hour_to,
		 active, created_at, updated_at
		 FROM pricing_rules
		 WHERE distributor_code = ? AND active = ?
		 ORDER BY priority DESC, code ASC`,
		strings.ToLower(strings.TrimSpace(distributorCode)),
		true,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
