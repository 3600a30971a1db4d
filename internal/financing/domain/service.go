package domain

import (
	"context"
	"errors"
)

type Service interface {
	Simulate(ctx context.Context, req SimulationRequest) (*SimulationResult, error)
}

// SimulationRequest asks for fixed-installment (PRICE table) financing
// options over the requested terms. MonthlyRatePercent is the nominal
// monthly interest rate, e.g. 1.49 for 1.49% a month.
type SimulationRequest struct {
	Amount             float64 `json:"amount"`
	MonthlyRatePercent float64 `json:"monthly_rate_percent"`
	TermsMonths        []int   `json:"terms_months"`
}

type Option struct {
	TermMonths         int     `json:"term_months"`
	MonthlyInstallment float64 `json:"monthly_installment"`
	TotalPaid          float64 `json:"total_paid"`
	TotalInterest      float64 `json:"total_interest"`
	CostPercent        float64 `json:"cost_percent"`
}

type SimulationResult struct {
	Amount             float64  `json:"amount"`
	MonthlyRatePercent float64  `json:"monthly_rate_percent"`
	Options            []Option `json:"options"`
}

var (
	ErrInvalidAmount = errors.New("invalid_amount")
	ErrInvalidRate   = errors.New("invalid_rate")
	ErrInvalidTerm   = errors.New("invalid_term")
)
