package solar

import (
	"github.com/solvolt/heliora/internal/solar/service"
	"go.uber.org/fx"
)

var Module = fx.Module("solar.service",
	fx.Provide(service.New),
)
