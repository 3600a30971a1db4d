package distributor

import (
	"github.com/solvolt/heliora/internal/distributor/repository"
	"github.com/solvolt/heliora/internal/distributor/service"
	"go.uber.org/fx"
)

var Module = fx.Module("distributor.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
