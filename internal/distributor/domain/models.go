package domain

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Tier is the distributor loyalty classification that determines the base
// pricing multiplier.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// ParseTier validates a tier name. Unknown names are rejected rather than
// silently defaulted.
func ParseTier(value string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(TierBronze):
		return TierBronze, nil
	case string(TierSilver):
		return TierSilver, nil
	case string(TierGold):
		return TierGold, nil
	case string(TierPlatinum):
		return TierPlatinum, nil
	default:
		return "", ErrInvalidTier
	}
}

type Distributor struct {
	ID                  snowflake.ID `json:"id" gorm:"primaryKey"`
	Code                string       `json:"code" gorm:"type:text;not null;uniqueIndex"`
	Name                string       `json:"name" gorm:"type:text;not null"`
	Tier                Tier         `json:"tier" gorm:"type:text;not null;default:bronze"`
	RegionCode          string       `json:"region_code" gorm:"type:text"`
	AvgDeliveryDays     *int         `json:"avg_delivery_days,omitempty" gorm:""`
	DefaultLeadTimeDays int          `json:"default_lead_time_days" gorm:"not null;default:15"`
	Active              bool         `json:"active" gorm:"not null;default:true"`
	CreatedAt           time.Time    `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt           time.Time    `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Distributor) TableName() string { return "distributors" }
