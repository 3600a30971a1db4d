package approval

import (
	"github.com/solvolt/heliora/internal/approval/repository"
	"github.com/solvolt/heliora/internal/approval/service"
	"go.uber.org/fx"
)

var Module = fx.Module("approval.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
