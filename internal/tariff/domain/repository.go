package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindLatestByState(ctx context.Context, db *gorm.DB, state string) (*Tariff, error)
}
