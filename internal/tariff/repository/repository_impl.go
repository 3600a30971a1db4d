package repository

import (
	"context"
	"strings"

	tariffdomain "github.com/solvolt/heliora/internal/tariff/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() tariffdomain.Repository {
	return &repo{}
}

func (r *repo) FindLatestByState(ctx context.Context, db *gorm.DB, state string) (*tariffdomain.Tariff, error) {
	var t tariffdomain.Tariff
	err := db.WithContext(ctx).Raw(
		`SELECT id, utility_code, state, kwh_rate,
		 yellow_surcharge, red1_surcharge, red2_surcharge,
		 valid_from, created_at, updated_at
		 FROM aneel_tariffs
		 WHERE state = ?
		 ORDER BY valid_from DESC
		 LIMIT 1`,
		strings.ToUpper(strings.TrimSpace(state)),
	).Scan(&t).Error
	if err != nil {
		return nil, err
	}
	if t.ID == 0 {
		return nil, nil
	}
	return &t, nil
}
