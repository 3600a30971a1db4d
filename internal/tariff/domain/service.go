package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Rate(ctx context.Context, state string, flag FlagColor) (*RateResponse, error)
	Simulate(ctx context.Context, req SimulationRequest) (*SimulationResult, error)
}

type RateResponse struct {
	UtilityCode   string    `json:"utility_code"`
	State         string    `json:"state"`
	Flag          FlagColor `json:"flag"`
	KwhRate       float64   `json:"kwh_rate"`
	EffectiveRate float64   `json:"effective_rate"`
	ValidFrom     time.Time `json:"valid_from"`
}

// SimulationRequest describes a prospective solar installation against the
// customer's current utility bill.
type SimulationRequest struct {
	State                string  `json:"state"`
	Flag                 string  `json:"flag"`
	MonthlyConsumptionKwh float64 `json:"monthly_consumption_kwh"`
	MonthlyGenerationKwh  float64 `json:"monthly_generation_kwh"`
	SystemCost           float64 `json:"system_cost"`
	HorizonYears         int     `json:"horizon_years"`
}

type SimulationResult struct {
	State                 string    `json:"state"`
	Flag                  FlagColor `json:"flag"`
	EffectiveRate         float64   `json:"effective_rate"`
	MonthlySavings        float64   `json:"monthly_savings"`
	PaybackMonths         float64   `json:"payback_months"`
	HorizonYears          int       `json:"horizon_years"`
	TotalSavingsOverHorizon float64 `json:"total_savings_over_horizon"`
	ROIPercent            float64   `json:"roi_percent"`
}

var (
	ErrInvalidState       = errors.New("invalid_state")
	ErrInvalidFlag        = errors.New("invalid_flag")
	ErrInvalidConsumption = errors.New("invalid_consumption")
	ErrInvalidSystemCost  = errors.New("invalid_system_cost")
	ErrNotFound           = errors.New("tariff_not_found")
)
