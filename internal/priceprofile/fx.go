package priceprofile

import (
	"github.com/solvolt/heliora/internal/priceprofile/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("priceprofile",
	fx.Provide(repository.Provide),
)
