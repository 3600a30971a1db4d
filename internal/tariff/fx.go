package tariff

import (
	"github.com/solvolt/heliora/internal/tariff/repository"
	"github.com/solvolt/heliora/internal/tariff/service"
	"go.uber.org/fx"
)

var Module = fx.Module("tariff.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
