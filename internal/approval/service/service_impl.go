package service

import (
	"context"
	"fmt"
	"strings"

	approvaldomain "github.com/solvolt/heliora/internal/approval/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo approvaldomain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo approvaldomain.Repository
}

func New(p Params) approvaldomain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("approval.service"),
		repo: p.Repo,
	}
}

// Evaluate walks the company's active rules once, highest priority first.
// Any matched rule moves the decision to pending approval.
func (s *Service) Evaluate(ctx context.Context, req approvaldomain.EvaluateRequest) (*approvaldomain.EvaluateResult, error) {
	companyCode := strings.ToLower(strings.TrimSpace(req.CompanyCode))
	if companyCode == "" {
		return nil, approvaldomain.ErrInvalidCompany
	}
	if req.OrderTotal <= 0 {
		return nil, approvaldomain.ErrInvalidOrderTotal
	}

	rules, err := s.repo.ListActive(ctx, s.db, companyCode)
	if err != nil {
		return nil, err
	}

	matched := make([]approvaldomain.MatchedRule, 0, len(rules))
	for _, rule := range rules {
		reason, ok := ruleTriggers(rule, req)
		if !ok {
			continue
		}
		matched = append(matched, approvaldomain.MatchedRule{
			Code:      rule.Code,
			Name:      rule.Name,
			Type:      rule.Type,
			Threshold: rule.Threshold,
			Priority:  rule.Priority,
			Reason:    reason,
		})
	}

	decision := approvaldomain.DecisionApproved
	if len(matched) > 0 {
		decision = approvaldomain.DecisionPending
	}

	s.log.Debug("approval evaluated",
		zap.String("company_code", companyCode),
		zap.Float64("order_total", req.OrderTotal),
		zap.Int("matched_rules", len(matched)),
		zap.String("decision", string(decision)),
	)

	return &approvaldomain.EvaluateResult{
		CompanyCode:  companyCode,
		OrderTotal:   req.OrderTotal,
		Decision:     decision,
		MatchedRules: matched,
	}, nil
}

func ruleTriggers(rule approvaldomain.ApprovalRule, req approvaldomain.EvaluateRequest) (string, bool) {
	switch rule.Type {
	case approvaldomain.RuleOrderTotal:
		if rule.Threshold == nil {
			return "", false
		}
		if req.OrderTotal >= *rule.Threshold {
			return fmt.Sprintf("order total %.2f reaches threshold %.2f", req.OrderTotal, *rule.Threshold), true
		}
	case approvaldomain.RuleMonthlySpendLimit:
		if rule.Threshold == nil {
			return "", false
		}
		projected := req.MonthToDateSpend + req.OrderTotal
		if projected > *rule.Threshold {
			return fmt.Sprintf("projected monthly spend %.2f exceeds limit %.2f", projected, *rule.Threshold), true
		}
	case approvaldomain.RuleAdminApproval:
		return "company requires admin approval for all orders", true
	}
	return "", false
}
