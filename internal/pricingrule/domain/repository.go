package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	ListActive(ctx context.Context, db *gorm.DB, distributorCode string) ([]PricingRule, error)
}

var ErrInvalidApplicationMethod = errors.New("invalid_application_method")
