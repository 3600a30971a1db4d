package domain

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

// FlagColor is the ANEEL tariff-flag level. Each level above green adds a
// per-kWh surcharge on top of the utility's base rate.
type FlagColor string

const (
	FlagGreen  FlagColor = "green"
	FlagYellow FlagColor = "yellow"
	FlagRed1   FlagColor = "red1"
	FlagRed2   FlagColor = "red2"
)

func ParseFlagColor(value string) (FlagColor, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(FlagGreen):
		return FlagGreen, nil
	case string(FlagYellow):
		return FlagYellow, nil
	case string(FlagRed1):
		return FlagRed1, nil
	case string(FlagRed2):
		return FlagRed2, nil
	default:
		return "", ErrInvalidFlag
	}
}

// Tariff is one utility's published rate for a state, per kWh in BRL.
type Tariff struct {
	ID          snowflake.ID `json:"id" gorm:"primaryKey"`
	UtilityCode string       `json:"utility_code" gorm:"type:text;not null"`
	State       string       `json:"state" gorm:"type:text;not null;index"`
	KwhRate     float64      `json:"kwh_rate" gorm:"type:numeric;not null"`

	YellowSurcharge float64 `json:"yellow_surcharge" gorm:"type:numeric;not null;default:0"`
	Red1Surcharge   float64 `json:"red1_surcharge" gorm:"type:numeric;not null;default:0"`
	Red2Surcharge   float64 `json:"red2_surcharge" gorm:"type:numeric;not null;default:0"`

	ValidFrom time.Time `json:"valid_from" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Tariff) TableName() string { return "aneel_tariffs" }

// EffectiveRate is the per-kWh rate including the flag surcharge.
func (t *Tariff) EffectiveRate(flag FlagColor) float64 {
	switch flag {
	case FlagYellow:
		return t.KwhRate + t.YellowSurcharge
	case FlagRed1:
		return t.KwhRate + t.Red1Surcharge
	case FlagRed2:
		return t.KwhRate + t.Red2Surcharge
	default:
		return t.KwhRate
	}
}
