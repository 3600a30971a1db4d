package domain

import (
	"context"
	"errors"
)

type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionPending  Decision = "pending_approval"
)

type Service interface {
	Evaluate(ctx context.Context, req EvaluateRequest) (*EvaluateResult, error)
}

type EvaluateRequest struct {
	CompanyCode      string  `json:"company_code"`
	OrderTotal       float64 `json:"order_total"`
	MonthToDateSpend float64 `json:"month_to_date_spend"`
}

// MatchedRule is one rule that fired, in priority order.
type MatchedRule struct {
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	Type      RuleType `json:"rule_type"`
	Threshold *float64 `json:"threshold,omitempty"`
	Priority  int      `json:"priority"`
	Reason    string   `json:"reason"`
}

type EvaluateResult struct {
	CompanyCode  string        `json:"company_code"`
	OrderTotal   float64       `json:"order_total"`
	Decision     Decision      `json:"decision"`
	MatchedRules []MatchedRule `json:"matched_rules"`
}

var (
	ErrInvalidCompany    = errors.New("invalid_company_code")
	ErrInvalidOrderTotal = errors.New("invalid_order_total")
)
