package domain

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

// RuleType names the bounded set of conditions the evaluator understands.
type RuleType string

const (
	// RuleOrderTotal triggers when the order total reaches the threshold.
	RuleOrderTotal RuleType = "order_total_threshold"
	// RuleMonthlySpendLimit triggers when month-to-date spend plus the order
	// total exceeds the threshold.
	RuleMonthlySpendLimit RuleType = "monthly_spend_limit"
	// RuleAdminApproval always requires a manual sign-off when active.
	RuleAdminApproval RuleType = "requires_admin_approval"
)

func ParseRuleType(s string) (RuleType, error) {
	switch RuleType(s) {
	case RuleOrderTotal, RuleMonthlySpendLimit, RuleAdminApproval:
		return RuleType(s), nil
	default:
		return "", ErrInvalidRuleType
	}
}

// ApprovalRule gates order placement for a company. CompanyCode empty means
// the rule applies to every company.
type ApprovalRule struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	CompanyCode string    `gorm:"index" json:"company_code"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Type        RuleType  `gorm:"column:rule_type" json:"rule_type"`
	Threshold   *float64  `json:"threshold,omitempty"`
	Priority    int       `json:"priority"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ApprovalRule) TableName() string {
	return "approval_rules"
}

var ErrInvalidRuleType = errors.New("invalid_rule_type")
