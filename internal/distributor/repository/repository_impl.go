package repository

import (
	"context"
	"strings"

	distributordomain "github.com/solvolt/heliora/internal/distributor/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() distributordomain.Repository {
	return &repo{}
}

func (r *repo) FindByCode(ctx context.Context, db *gorm.DB, code string) (*distributordomain.Distributor, error) {
	var d distributordomain.Distributor
	err := db.WithContext(ctx).Raw(
		`SELECT id, code, name, tier, region_code, avg_delivery_days,
		 default_lead_time_days, active, created_at, updated_at
		 FROM distributors WHERE code = ?`,
		strings.ToLower(strings.TrimSpace(code)),
	).Scan(&d).Error
	if err != nil {
		return nil, err
	}
	if d.ID == 0 {
		return nil, nil
	}
	return &d, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]distributordomain.Distributor, error) {
	var items []distributordomain.Distributor
	err := db.WithContext(ctx).Raw(
		`SELECT id, code, name, tier, region_code, avg_delivery_days,
		 default_lead_time_days, active, created_at, updated_at
		 FROM distributors WHERE active = ? ORDER BY code ASC`,
		true,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
