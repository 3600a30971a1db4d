package bootstrap

import (
	"github.com/bwmarrin/snowflake"
	approvaldomain "github.com/solvolt/heliora/internal/approval/domain"
	"github.com/solvolt/heliora/internal/config"
	distributordomain "github.com/solvolt/heliora/internal/distributor/domain"
	priceprofiledomain "github.com/solvolt/heliora/internal/priceprofile/domain"
	pricingruledomain "github.com/solvolt/heliora/internal/pricingrule/domain"
	"github.com/solvolt/heliora/internal/seed"
	tariffdomain "github.com/solvolt/heliora/internal/tariff/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Module creates the reference-data tables on startup and, outside
// production, seeds demo records so the API answers immediately.
var Module = fx.Module("bootstrap",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, node *snowflake.Node) error {
		if err := conn.AutoMigrate(
			&distributordomain.Distributor{},
			&priceprofiledomain.ProductPriceProfile{},
			&pricingruledomain.PricingRule{},
			&tariffdomain.Tariff{},
			&approvaldomain.ApprovalRule{},
		); err != nil {
			return err
		}

		if cfg.IsProduction() {
			return nil
		}
		return seed.EnsureDemoData(conn, node)
	}),
)
