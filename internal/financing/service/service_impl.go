package service

import (
	"context"
	"math"
	"sort"

	financingdomain "github.com/solvolt/heliora/internal/financing/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var defaultTerms = []int{12, 24, 36, 48, 60}

type Params struct {
	fx.In

	Log *zap.Logger
}

type Service struct {
	log *zap.Logger
}

func New(p Params) financingdomain.Service {
	return &Service{
		log: p.Log.Named("financing.service"),
	}
}

// Simulate computes fixed installments with the PRICE amortization formula:
// pmt = P * i / (1 - (1+i)^-n).
func (s *Service) Simulate(ctx context.Context, req financingdomain.SimulationRequest) (*financingdomain.SimulationResult, error) {
	_ = ctx

	if req.Amount <= 0 {
		return nil, financingdomain.ErrInvalidAmount
	}
	if req.MonthlyRatePercent < 0 {
		return nil, financingdomain.ErrInvalidRate
	}

	terms := req.TermsMonths
	if len(terms) == 0 {
		terms = defaultTerms
	}
	for _, t := range terms {
		if t <= 0 {
			return nil, financingdomain.ErrInvalidTerm
		}
	}
	terms = append([]int(nil), terms...)
	sort.Ints(terms)

	rate := req.MonthlyRatePercent / 100
	options := make([]financingdomain.Option, 0, len(terms))
	for _, months := range terms {
		installment := req.Amount / float64(months)
		if rate > 0 {
			installment = req.Amount * rate / (1 - math.Pow(1+rate, -float64(months)))
		}
		total := installment * float64(months)
		options = append(options, financingdomain.Option{
			TermMonths:         months,
			MonthlyInstallment: installment,
			TotalPaid:          total,
			TotalInterest:      total - req.Amount,
			CostPercent:        (total - req.Amount) / req.Amount * 100,
		})
	}

	return &financingdomain.SimulationResult{
		Amount:             req.Amount,
		MonthlyRatePercent: req.MonthlyRatePercent,
		Options:            options,
	}, nil
}
