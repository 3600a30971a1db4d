package domain

import (
	"context"
	"errors"
)

type Service interface {
	Estimate(ctx context.Context, req EstimateRequest) (*EstimateResult, error)
	Recommend(ctx context.Context, req RecommendRequest) (*Recommendation, error)
}

// EstimateRequest describes a system to project generation for.
// IrradianceKwhM2Day is the site's average daily irradiance (peak sun hours).
type EstimateRequest struct {
	IrradianceKwhM2Day    float64 `json:"irradiance_kwh_m2_day"`
	SystemSizeKwp         float64 `json:"system_size_kwp"`
	SystemLossFraction    float64 `json:"system_loss_fraction"`
	AnnualDegradationRate float64 `json:"annual_degradation_rate"`
	HorizonYears          int     `json:"horizon_years"`
}

type EstimateResult struct {
	MonthlyGenerationKwh   float64 `json:"monthly_generation_kwh"`
	AnnualGenerationKwh    float64 `json:"annual_generation_kwh"`
	HorizonYears           int     `json:"horizon_years"`
	LifetimeGenerationKwh  float64 `json:"lifetime_generation_kwh"`
	FinalYearGenerationKwh float64 `json:"final_year_generation_kwh"`
}

type RecommendRequest struct {
	MonthlyConsumptionKwh float64 `json:"monthly_consumption_kwh"`
	IrradianceKwhM2Day    float64 `json:"irradiance_kwh_m2_day"`
	PanelWatts            int     `json:"panel_watts"`
	SystemLossFraction    float64 `json:"system_loss_fraction"`
}

type Recommendation struct {
	SystemSizeKwp        float64 `json:"system_size_kwp"`
	PanelCount           int     `json:"panel_count"`
	MonthlyGenerationKwh float64 `json:"monthly_generation_kwh"`
}

var (
	ErrInvalidIrradiance = errors.New("invalid_irradiance")
	ErrInvalidSystemSize = errors.New("invalid_system_size")
	ErrInvalidLossFactor = errors.New("invalid_loss_factor")
	ErrInvalidConsumption = errors.New("invalid_consumption")
	ErrInvalidPanelWatts  = errors.New("invalid_panel_watts")
)
