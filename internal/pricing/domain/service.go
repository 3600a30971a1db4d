package domain

import (
	"context"
	"errors"
)

type Service interface {
	Calculate(ctx context.Context, req CalculateRequest) (*Result, error)
	CalculateBatch(ctx context.Context, req BatchRequest) (*BatchResult, error)
}

var (
	ErrInvalidProduct     = errors.New("invalid_product")
	ErrInvalidDistributor = errors.New("invalid_distributor")
	ErrInvalidQuantity    = errors.New("invalid_quantity")
	ErrEmptyBatch         = errors.New("empty_batch")
)
