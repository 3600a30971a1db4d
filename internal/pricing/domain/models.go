package domain

import (
	distributordomain "github.com/solvolt/heliora/internal/distributor/domain"
	pricingruledomain "github.com/solvolt/heliora/internal/pricingrule/domain"
)

// CalculateRequest is the input for a single pricing calculation.
// ProductID and DistributorCode are required; Quantity defaults to 1.
type CalculateRequest struct {
	ProductID       string `json:"product_id"`
	DistributorCode string `json:"distributor_code"`
	DistributorTier string `json:"distributor_tier"`
	Quantity        int    `json:"quantity"`
	RegionCode      string `json:"region_code"`
	CustomerGroupID string `json:"customer_group_id"`
	PaymentMethod   string `json:"payment_method"`
	CurrencyCode    string `json:"currency_code"`
}

type BatchItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type BatchRequest struct {
	Items           []BatchItem `json:"items"`
	DistributorCode string      `json:"distributor_code"`
	DistributorTier string      `json:"distributor_tier"`
	RegionCode      string      `json:"region_code"`
	PaymentMethod   string      `json:"payment_method"`
}

// AppliedRule records one rule application for auditability. Adjustment is
// the signed price delta (negative for discounts).
type AppliedRule struct {
	Code       string                              `json:"code"`
	Name       string                              `json:"name"`
	Method     pricingruledomain.ApplicationMethod `json:"application_method"`
	Value      float64                             `json:"value"`
	Priority   int                                 `json:"priority"`
	Adjustment float64                             `json:"adjustment"`
	PriceAfter float64                             `json:"price_after"`
}

// Result is the computed pricing output. It is constructed once per request
// and never mutated after return. FinalUnitPrice is never negative, and
// AppliedRules preserves priority-descending evaluation order.
type Result struct {
	ProductID       string               `json:"product_id"`
	DistributorCode string               `json:"distributor_code"`
	Tier            distributordomain.Tier `json:"distributor_tier"`
	Quantity        int                  `json:"quantity"`

	BasePrice      float64 `json:"base_price"`
	TierMultiplier float64 `json:"tier_multiplier"`
	TierPrice      float64 `json:"tier_price"`

	VolumeDiscountPercent float64 `json:"volume_discount_percent"`
	VolumeDiscountAmount  float64 `json:"volume_discount_amount"`

	AppliedRules              []AppliedRule `json:"applied_rules"`
	CumulativeDiscountPercent float64       `json:"cumulative_discount_percent"`

	FinalUnitPrice float64 `json:"final_unit_price"`
	FinalLinePrice float64 `json:"final_line_price"`
	CurrencyCode   string  `json:"currency_code"`

	InmetroCertified     bool `json:"inmetro_certified"`
	DeliveryEstimateDays int  `json:"delivery_estimate_days"`
}

type BatchSummary struct {
	TotalQuantity          int     `json:"total_quantity"`
	Subtotal               float64 `json:"subtotal"`
	TotalSavings           float64 `json:"total_savings"`
	AverageDiscountPercent float64 `json:"average_discount_percent"`
}

type BatchResult struct {
	Items   []Result     `json:"items"`
	Summary BatchSummary `json:"summary"`
}
