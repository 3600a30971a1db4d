package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/solvolt/heliora/internal/config"
	tariffdomain "github.com/solvolt/heliora/internal/tariff/domain"
	tariffrepo "github.com/solvolt/heliora/internal/tariff/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTariffService(t *testing.T) (tariffdomain.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&tariffdomain.Tariff{}))

	svc := New(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Cfg:  config.Config{TariffCacheTTLSeconds: 300},
		Repo: tariffrepo.Provide(),
	})
	return svc, db
}

var seedNode *snowflake.Node

func seedTariff(t *testing.T, db *gorm.DB, state string, validFrom time.Time, kwhRate float64) {
	t.Helper()
	if seedNode == nil {
		node, err := snowflake.NewNode(1)
		require.NoError(t, err)
		seedNode = node
	}
	node := seedNode
	require.NoError(t, db.Create(&tariffdomain.Tariff{
		ID:              node.Generate(),
		UtilityCode:     "enel-" + state,
		State:           state,
		KwhRate:         kwhRate,
		YellowSurcharge: 0.02,
		Red1Surcharge:   0.04,
		Red2Surcharge:   0.08,
		ValidFrom:       validFrom,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}).Error)
}

func TestRate_FlagSurcharges(t *testing.T) {
	svc, db := setupTariffService(t)
	seedTariff(t, db, "SP", time.Now().UTC().AddDate(0, -1, 0), 0.90)

	cases := []struct {
		flag tariffdomain.FlagColor
		want float64
	}{
		{tariffdomain.FlagGreen, 0.90},
		{tariffdomain.FlagYellow, 0.92},
		{tariffdomain.FlagRed1, 0.94},
		{tariffdomain.FlagRed2, 0.98},
	}
	for _, tc := range cases {
		resp, err := svc.Rate(context.Background(), "sp", tc.flag)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, resp.EffectiveRate, 1e-9, "flag %s", tc.flag)
		assert.Equal(t, "SP", resp.State)
	}
}

func TestRate_LatestTariffWins(t *testing.T) {
	svc, db := setupTariffService(t)
	seedTariff(t, db, "MG", time.Now().UTC().AddDate(-1, 0, 0), 0.80)
	seedTariff(t, db, "MG", time.Now().UTC().AddDate(0, -1, 0), 0.85)

	resp, err := svc.Rate(context.Background(), "MG", tariffdomain.FlagGreen)
	require.NoError(t, err)
	assert.InDelta(t, 0.85, resp.KwhRate, 1e-9)
}

func TestRate_Validation(t *testing.T) {
	svc, _ := setupTariffService(t)

	_, err := svc.Rate(context.Background(), "", tariffdomain.FlagGreen)
	assert.ErrorIs(t, err, tariffdomain.ErrInvalidState)

	_, err = svc.Rate(context.Background(), "XYZ", tariffdomain.FlagGreen)
	assert.ErrorIs(t, err, tariffdomain.ErrInvalidState)

	_, err = svc.Rate(context.Background(), "ZZ", tariffdomain.FlagGreen)
	assert.ErrorIs(t, err, tariffdomain.ErrNotFound)
}

func TestRate_ServedFromLocalCacheAfterFirstLookup(t *testing.T) {
	svc, db := setupTariffService(t)
	seedTariff(t, db, "RJ", time.Now().UTC().AddDate(0, -1, 0), 0.95)

	first, err := svc.Rate(context.Background(), "RJ", tariffdomain.FlagGreen)
	require.NoError(t, err)

	// Remove the row; the cached copy must still answer.
	require.NoError(t, db.Exec("DELETE FROM aneel_tariffs").Error)

	second, err := svc.Rate(context.Background(), "RJ", tariffdomain.FlagGreen)
	require.NoError(t, err)
	assert.Equal(t, first.KwhRate, second.KwhRate)
}

func TestSimulate_SavingsPaybackROI(t *testing.T) {
	svc, db := setupTariffService(t)
	seedTariff(t, db, "SP", time.Now().UTC().AddDate(0, -1, 0), 1.00)

	result, err := svc.Simulate(context.Background(), tariffdomain.SimulationRequest{
		State:                 "SP",
		Flag:                  "green",
		MonthlyConsumptionKwh: 500,
		MonthlyGenerationKwh:  400,
		SystemCost:            24000,
		HorizonYears:          25,
	})
	require.NoError(t, err)

	assert.InDelta(t, 400, result.MonthlySavings, 1e-9)
	assert.InDelta(t, 60, result.PaybackMonths, 1e-9)
	assert.InDelta(t, 120000, result.TotalSavingsOverHorizon, 1e-9)
	assert.InDelta(t, 400, result.ROIPercent, 1e-9)
}

func TestSimulate_GenerationCappedAtConsumption(t *testing.T) {
	svc, db := setupTariffService(t)
	seedTariff(t, db, "SP", time.Now().UTC().AddDate(0, -1, 0), 1.00)

	result, err := svc.Simulate(context.Background(), tariffdomain.SimulationRequest{
		State:                 "SP",
		MonthlyConsumptionKwh: 300,
		MonthlyGenerationKwh:  450,
		SystemCost:            10000,
	})
	require.NoError(t, err)
	assert.InDelta(t, 300, result.MonthlySavings, 1e-9)
	assert.Equal(t, 25, result.HorizonYears)
}

func TestSimulate_Validation(t *testing.T) {
	svc, _ := setupTariffService(t)

	_, err := svc.Simulate(context.Background(), tariffdomain.SimulationRequest{
		State: "SP", Flag: "purple", MonthlyConsumptionKwh: 500, SystemCost: 1000,
	})
	assert.ErrorIs(t, err, tariffdomain.ErrInvalidFlag)

	_, err = svc.Simulate(context.Background(), tariffdomain.SimulationRequest{
		State: "SP", SystemCost: 1000,
	})
	assert.ErrorIs(t, err, tariffdomain.ErrInvalidConsumption)

	_, err = svc.Simulate(context.Background(), tariffdomain.SimulationRequest{
		State: "SP", MonthlyConsumptionKwh: 500,
	})
	assert.ErrorIs(t, err, tariffdomain.ErrInvalidSystemCost)
}
