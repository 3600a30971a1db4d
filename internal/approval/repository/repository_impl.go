package repository

import (
	"context"
	"strings"

	approvaldomain "github.com/solvolt/heliora/internal/approval/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() approvaldomain.Repository {
	return &repo{}
}

func (r *repo) ListActive(ctx context.Context, db *gorm.DB, companyCode string) ([]approvaldomain.ApprovalRule, error) {
	var items []approvaldomain.ApprovalRule
	err := db.WithContext(ctx).Raw(
		`SELECT id, company_code, code, name, rule_type, threshold, priority,
		 active, created_at, updated_at
		 FROM approval_rules
		 WHERE (company_code = ? OR company_code = '') AND active = ?
		 ORDER BY priority DESC, code ASC`,
		strings.ToLower(strings.TrimSpace(companyCode)),
		true,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
