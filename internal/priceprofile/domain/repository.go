package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	FindByProductAndDistributor(ctx context.Context, db *gorm.DB, productID, distributorCode string) (*ProductPriceProfile, error)
}

var ErrNotFound = errors.New("price_profile_not_found")
