package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/solvolt/heliora/internal/bootstrap"
	"github.com/solvolt/heliora/internal/observability"
	"github.com/solvolt/heliora/internal/server"
	"github.com/solvolt/heliora/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		server.Module,
		bootstrap.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
