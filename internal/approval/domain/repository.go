package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// ListActive returns active rules for the company plus global rules
	// (empty company code), highest priority first.
	ListActive(ctx context.Context, db *gorm.DB, companyCode string) ([]ApprovalRule, error)
}
