package pricingrule

import (
	"github.com/solvolt/heliora/internal/pricingrule/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("pricingrule",
	fx.Provide(repository.Provide),
)
