package domain

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// ApplicationMethod determines how a rule's value adjusts the running price.
type ApplicationMethod string

const (
	Percentage  ApplicationMethod = "percentage"
	FixedAmount ApplicationMethod = "fixed_amount"
	Multiplier  ApplicationMethod = "multiplier"
	Override    ApplicationMethod = "override"
)

func ParseApplicationMethod(value string) (ApplicationMethod, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(Percentage):
		return Percentage, nil
	case string(FixedAmount):
		return FixedAmount, nil
	case string(Multiplier):
		return Multiplier, nil
	case string(Override):
		return Override, nil
	default:
		return "", ErrInvalidApplicationMethod
	}
}

// PricingRule is a prioritized conditional price adjustment. Rules are
// read-only reference data here; their lifecycle is managed elsewhere.
//
// An unset condition leaves the rule unconstrained on that axis.
type PricingRule struct {
	ID              snowflake.ID      `json:"id" gorm:"primaryKey"`
	DistributorCode string            `json:"distributor_code" gorm:"type:text;not null;index"`
	Code            string            `json:"code" gorm:"type:text;not null"`
	Name            string            `json:"name" gorm:"type:text;not null"`
	Method          ApplicationMethod `json:"application_method" gorm:"column:application_method;type:text;not null"`
	Value           float64           `json:"value" gorm:"type:numeric;not null"`
	Priority        int               `json:"priority" gorm:"not null;default:0"`
	Stackable       bool              `json:"stackable" gorm:"not null;default:false"`

	MinQuantity           *int                        `json:"min_quantity,omitempty" gorm:""`
	MaxQuantity           *int                        `json:"max_quantity,omitempty" gorm:""`
	Tiers                 datatypes.JSONSlice[string] `json:"tiers,omitempty" gorm:"type:jsonb"`
	Regions               datatypes.JSONSlice[string] `json:"regions,omitempty" gorm:"type:jsonb"`
	PaymentMethods        datatypes.JSONSlice[string] `json:"payment_methods,omitempty" gorm:"type:jsonb"`
	RequiresCertification bool                        `json:"requires_certification" gorm:"not null;default:false"`
	MinQualityScore       *float64                    `json:"min_quality_score,omitempty" gorm:"type:numeric"`

	StartsAt       *time.Time               `json:"starts_at,omitempty" gorm:""`
	EndsAt         *time.Time               `json:"ends_at,omitempty" gorm:""`
	ActiveWeekdays datatypes.JSONSlice[int] `json:"active_weekdays,omitempty" gorm:"type:jsonb"`
	ActiveHourFrom *int                     `json:"active_hour_from,omitempty" gorm:""`
	ActiveHourTo   *int                     `json:"active_hour_to,omitempty" gorm:""`

	Active    bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (PricingRule) TableName() string { return "pricing_rules" }
