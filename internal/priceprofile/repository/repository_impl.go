package repository

import (
	"context"
	"strings"

	priceprofiledomain "github.com/solvolt/heliora/internal/priceprofile/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() priceprofiledomain.Repository {
	return &repo{}
}

func (r *repo) FindByProductAndDistributor(ctx context.Context, db *gorm.DB, productID, distributorCode string) (*priceprofiledomain.ProductPriceProfile, error) {
	var p priceprofiledomain.ProductPriceProfile
	err := db.WithContext(ctx).Raw(
		`SELECT id, product_id, distributor_code, base_price, currency_code,
		 bronze_price, silver_price, gold_price, platinum_price,
		 volume_tier_1_qty, volume_tier_1_price,
		 volume_tier_2_qty, volume_tier_2_price,
		 volume_tier_3_qty, volume_tier_3_price,
		 inmetro_certified, quality_score, lead_time_days,
		 created_at, updated_at
		 FROM product_price_profiles
		 WHERE product_id = ? AND distributor_code = ?`,
		strings.TrimSpace(productID),
		strings.ToLower(strings.TrimSpace(distributorCode)),
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}
