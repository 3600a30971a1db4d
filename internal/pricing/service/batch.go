package service

import (
	"context"
	"strings"
	"sync"

	pricingdomain "github.com/solvolt/heliora/internal/pricing/domain"
)

// CalculateBatch prices each line item independently and concurrently.
// Results are joined by index so the output preserves input order. The first
// failing item fails the whole batch.
func (s *Service) CalculateBatch(ctx context.Context, req pricingdomain.BatchRequest) (*pricingdomain.BatchResult, error) {
	if len(req.Items) == 0 {
		return nil, pricingdomain.ErrEmptyBatch
	}
	if strings.TrimSpace(req.DistributorCode) == "" {
		return nil, pricingdomain.ErrInvalidDistributor
	}

	results := make([]*pricingdomain.Result, len(req.Items))
	errs := make([]error, len(req.Items))

	var wg sync.WaitGroup
	for i, item := range req.Items {
		wg.Add(1)
		go func(idx int, item pricingdomain.BatchItem) {
			defer wg.Done()
			results[idx], errs[idx] = s.Calculate(ctx, pricingdomain.CalculateRequest{
				ProductID:       item.ProductID,
				DistributorCode: req.DistributorCode,
				DistributorTier: req.DistributorTier,
				Quantity:        item.Quantity,
				RegionCode:      req.RegionCode,
				PaymentMethod:   req.PaymentMethod,
			})
		}(i, item)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	items := make([]pricingdomain.Result, len(results))
	summary := pricingdomain.BatchSummary{}
	discountSum := 0.0
	for i, r := range results {
		items[i] = *r
		summary.TotalQuantity += r.Quantity
		summary.Subtotal += r.FinalLinePrice
		summary.TotalSavings += r.BasePrice*float64(r.Quantity) - r.FinalLinePrice
		if r.BasePrice > 0 {
			discountSum += (r.BasePrice - r.FinalUnitPrice) / r.BasePrice * 100
		}
	}
	summary.AverageDiscountPercent = discountSum / float64(len(results))

	s.metrics.RecordBatchSize(ctx, len(items))

	return &pricingdomain.BatchResult{
		Items:   items,
		Summary: summary,
	}, nil
}
