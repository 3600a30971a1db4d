package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// ProductPriceProfile holds the per (product, distributor) pricing facts a
// calculation starts from. It is fetched fresh for every request and treated
// as immutable for the duration of the calculation.
type ProductPriceProfile struct {
	ID              snowflake.ID `json:"id" gorm:"primaryKey"`
	ProductID       string       `json:"product_id" gorm:"type:text;not null;index:idx_profile_product_distributor,unique"`
	DistributorCode string       `json:"distributor_code" gorm:"type:text;not null;index:idx_profile_product_distributor,unique"`

	BasePrice    float64 `json:"base_price" gorm:"type:numeric;not null"`
	CurrencyCode string  `json:"currency_code" gorm:"type:text;not null;default:BRL"`

	BronzePrice   *float64 `json:"bronze_price,omitempty" gorm:"type:numeric"`
	SilverPrice   *float64 `json:"silver_price,omitempty" gorm:"type:numeric"`
	GoldPrice     *float64 `json:"gold_price,omitempty" gorm:"type:numeric"`
	PlatinumPrice *float64 `json:"platinum_price,omitempty" gorm:"type:numeric"`

	VolumeTier1Qty   *int     `json:"volume_tier_1_qty,omitempty" gorm:"column:volume_tier_1_qty"`
	VolumeTier1Price *float64 `json:"volume_tier_1_price,omitempty" gorm:"column:volume_tier_1_price;type:numeric"`
	VolumeTier2Qty   *int     `json:"volume_tier_2_qty,omitempty" gorm:"column:volume_tier_2_qty"`
	VolumeTier2Price *float64 `json:"volume_tier_2_price,omitempty" gorm:"column:volume_tier_2_price;type:numeric"`
	VolumeTier3Qty   *int     `json:"volume_tier_3_qty,omitempty" gorm:"column:volume_tier_3_qty"`
	VolumeTier3Price *float64 `json:"volume_tier_3_price,omitempty" gorm:"column:volume_tier_3_price;type:numeric"`

	InmetroCertified bool    `json:"inmetro_certified" gorm:"not null;default:false"`
	QualityScore     float64 `json:"quality_score" gorm:"type:numeric;not null;default:0"`
	LeadTimeDays     int     `json:"lead_time_days" gorm:"not null;default:15"`

	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (ProductPriceProfile) TableName() string { return "product_price_profiles" }
