package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	approvaldomain "github.com/solvolt/heliora/internal/approval/domain"
	distributordomain "github.com/solvolt/heliora/internal/distributor/domain"
	priceprofiledomain "github.com/solvolt/heliora/internal/priceprofile/domain"
	pricingruledomain "github.com/solvolt/heliora/internal/pricingrule/domain"
	tariffdomain "github.com/solvolt/heliora/internal/tariff/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	demoDistributorCode = "solmax-sp"
	demoProductID       = "panel-550w-mono"
)

// EnsureDemoData seeds a distributor, price profile, pricing rule, tariff and
// an approval rule so a fresh development database answers pricing calls.
func EnsureDemoData(db *gorm.DB, node *snowflake.Node) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}
	if node == nil {
		return errors.New("seed id node is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureDistributorTx(ctx, tx, node); err != nil {
			return err
		}
		if err := ensurePriceProfileTx(ctx, tx, node); err != nil {
			return err
		}
		if err := ensurePricingRuleTx(ctx, tx, node); err != nil {
			return err
		}
		if err := ensureTariffTx(ctx, tx, node); err != nil {
			return err
		}
		return ensureApprovalRuleTx(ctx, tx, node)
	})
}

func ensureDistributorTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var existing distributordomain.Distributor
	err := tx.WithContext(ctx).Where("code = ?", demoDistributorCode).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	avgDelivery := 7
	now := time.Now().UTC()
	return tx.WithContext(ctx).Create(&distributordomain.Distributor{
		ID:                  node.Generate(),
		Code:                demoDistributorCode,
		Name:                "SolMax Distribuidora SP",
		Tier:                distributordomain.TierGold,
		RegionCode:          "sudeste",
		AvgDeliveryDays:     &avgDelivery,
		DefaultLeadTimeDays: 15,
		Active:              true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}).Error
}

func ensurePriceProfileTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var existing priceprofiledomain.ProductPriceProfile
	err := tx.WithContext(ctx).
		Where("product_id = ? AND distributor_code = ?", demoProductID, demoDistributorCode).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	vol1Qty, vol1Price := 10, 855.0
	vol2Qty, vol2Price := 50, 810.0
	vol3Qty, vol3Price := 100, 765.0
	now := time.Now().UTC()
	return tx.WithContext(ctx).Create(&priceprofiledomain.ProductPriceProfile{
		ID:               node.Generate(),
		ProductID:        demoProductID,
		DistributorCode:  demoDistributorCode,
		BasePrice:        1000,
		CurrencyCode:     "BRL",
		VolumeTier1Qty:   &vol1Qty,
		VolumeTier1Price: &vol1Price,
		VolumeTier2Qty:   &vol2Qty,
		VolumeTier2Price: &vol2Price,
		VolumeTier3Qty:   &vol3Qty,
		VolumeTier3Price: &vol3Price,
		InmetroCertified: true,
		QualityScore:     4.5,
		LeadTimeDays:     20,
		CreatedAt:        now,
		UpdatedAt:        now,
	}).Error
}

func ensurePricingRuleTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	const ruleCode = "pix-discount"

	var existing pricingruledomain.PricingRule
	err := tx.WithContext(ctx).
		Where("distributor_code = ? AND code = ?", demoDistributorCode, ruleCode).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	now := time.Now().UTC()
	return tx.WithContext(ctx).Create(&pricingruledomain.PricingRule{
		ID:              node.Generate(),
		DistributorCode: demoDistributorCode,
		Code:            ruleCode,
		Name:            "PIX payment discount",
		Method:          pricingruledomain.Percentage,
		Value:           3,
		Priority:        100,
		Stackable:       true,
		PaymentMethods:  datatypes.JSONSlice[string]{"pix"},
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}).Error
}

func ensureTariffTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var existing tariffdomain.Tariff
	err := tx.WithContext(ctx).Where("state = ?", "SP").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	now := time.Now().UTC()
	return tx.WithContext(ctx).Create(&tariffdomain.Tariff{
		ID:              node.Generate(),
		UtilityCode:     "enel-sp",
		State:           "SP",
		KwhRate:         0.92,
		YellowSurcharge: 0.01874,
		Red1Surcharge:   0.04463,
		Red2Surcharge:   0.07877,
		ValidFrom:       now.AddDate(0, -1, 0),
		CreatedAt:       now,
		UpdatedAt:       now,
	}).Error
}

func ensureApprovalRuleTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	const ruleCode = "order-over-50k"

	var existing approvaldomain.ApprovalRule
	err := tx.WithContext(ctx).Where("code = ?", ruleCode).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	threshold := 50000.0
	now := time.Now().UTC()
	return tx.WithContext(ctx).Create(&approvaldomain.ApprovalRule{
		ID:        node.Generate(),
		Code:      ruleCode,
		Name:      "Orders above R$50k need sign-off",
		Type:      approvaldomain.RuleOrderTotal,
		Threshold: &threshold,
		Priority:  100,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error
}
