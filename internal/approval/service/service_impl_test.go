package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	approvaldomain "github.com/solvolt/heliora/internal/approval/domain"
	approvalrepo "github.com/solvolt/heliora/internal/approval/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupApprovalService(t *testing.T) (approvaldomain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&approvaldomain.ApprovalRule{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: approvalrepo.Provide(),
	})
	return svc, db, node
}

func seedApprovalRule(t *testing.T, db *gorm.DB, node *snowflake.Node, rule approvaldomain.ApprovalRule) {
	t.Helper()
	rule.ID = node.Generate()
	rule.Active = true
	now := time.Now().UTC()
	rule.CreatedAt = now
	rule.UpdatedAt = now
	require.NoError(t, db.Create(&rule).Error)
}

func TestEvaluate_AutoApprovedWithoutMatches(t *testing.T) {
	svc, db, node := setupApprovalService(t)
	threshold := 50000.0
	seedApprovalRule(t, db, node, approvaldomain.ApprovalRule{
		CompanyCode: "acme",
		Code:        "order-over-50k",
		Type:        approvaldomain.RuleOrderTotal,
		Threshold:   &threshold,
		Priority:    100,
	})

	result, err := svc.Evaluate(context.Background(), approvaldomain.EvaluateRequest{
		CompanyCode: "acme",
		OrderTotal:  10000,
	})
	require.NoError(t, err)
	assert.Equal(t, approvaldomain.DecisionApproved, result.Decision)
	assert.Empty(t, result.MatchedRules)
}

func TestEvaluate_OrderTotalThreshold(t *testing.T) {
	svc, db, node := setupApprovalService(t)
	threshold := 50000.0
	seedApprovalRule(t, db, node, approvaldomain.ApprovalRule{
		CompanyCode: "acme",
		Code:        "order-over-50k",
		Type:        approvaldomain.RuleOrderTotal,
		Threshold:   &threshold,
		Priority:    100,
	})

	result, err := svc.Evaluate(context.Background(), approvaldomain.EvaluateRequest{
		CompanyCode: "acme",
		OrderTotal:  60000,
	})
	require.NoError(t, err)
	assert.Equal(t, approvaldomain.DecisionPending, result.Decision)
	require.Len(t, result.MatchedRules, 1)
	assert.Equal(t, "order-over-50k", result.MatchedRules[0].Code)
}

func TestEvaluate_MonthlySpendLimitProjectsOrder(t *testing.T) {
	svc, db, node := setupApprovalService(t)
	limit := 100000.0
	seedApprovalRule(t, db, node, approvaldomain.ApprovalRule{
		CompanyCode: "acme",
		Code:        "monthly-limit",
		Type:        approvaldomain.RuleMonthlySpendLimit,
		Threshold:   &limit,
		Priority:    50,
	})

	// 90k spent + 5k order stays under the limit.
	result, err := svc.Evaluate(context.Background(), approvaldomain.EvaluateRequest{
		CompanyCode:      "acme",
		OrderTotal:       5000,
		MonthToDateSpend: 90000,
	})
	require.NoError(t, err)
	assert.Equal(t, approvaldomain.DecisionApproved, result.Decision)

	// 90k spent + 15k order breaches it.
	result, err = svc.Evaluate(context.Background(), approvaldomain.EvaluateRequest{
		CompanyCode:      "acme",
		OrderTotal:       15000,
		MonthToDateSpend: 90000,
	})
	require.NoError(t, err)
	assert.Equal(t, approvaldomain.DecisionPending, result.Decision)
}

func TestEvaluate_GlobalRulesApplyToEveryCompany(t *testing.T) {
	svc, db, node := setupApprovalService(t)
	seedApprovalRule(t, db, node, approvaldomain.ApprovalRule{
		Code:     "manual-review",
		Type:     approvaldomain.RuleAdminApproval,
		Priority: 10,
	})

	result, err := svc.Evaluate(context.Background(), approvaldomain.EvaluateRequest{
		CompanyCode: "any-company",
		OrderTotal:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, approvaldomain.DecisionPending, result.Decision)
	require.Len(t, result.MatchedRules, 1)
	assert.Equal(t, approvaldomain.RuleAdminApproval, result.MatchedRules[0].Type)
}

func TestEvaluate_MatchedRulesInPriorityOrder(t *testing.T) {
	svc, db, node := setupApprovalService(t)
	threshold := 1000.0
	seedApprovalRule(t, db, node, approvaldomain.ApprovalRule{
		CompanyCode: "acme",
		Code:        "low-priority",
		Type:        approvaldomain.RuleAdminApproval,
		Priority:    10,
	})
	seedApprovalRule(t, db, node, approvaldomain.ApprovalRule{
		CompanyCode: "acme",
		Code:        "high-priority",
		Type:        approvaldomain.RuleOrderTotal,
		Threshold:   &threshold,
		Priority:    100,
	})

	result, err := svc.Evaluate(context.Background(), approvaldomain.EvaluateRequest{
		CompanyCode: "acme",
		OrderTotal:  5000,
	})
	require.NoError(t, err)
	require.Len(t, result.MatchedRules, 2)
	assert.Equal(t, "high-priority", result.MatchedRules[0].Code)
	assert.Equal(t, "low-priority", result.MatchedRules[1].Code)
}

func TestEvaluate_Validation(t *testing.T) {
	svc, _, _ := setupApprovalService(t)

	_, err := svc.Evaluate(context.Background(), approvaldomain.EvaluateRequest{OrderTotal: 100})
	assert.ErrorIs(t, err, approvaldomain.ErrInvalidCompany)

	_, err = svc.Evaluate(context.Background(), approvaldomain.EvaluateRequest{CompanyCode: "acme"})
	assert.ErrorIs(t, err, approvaldomain.ErrInvalidOrderTotal)
}
