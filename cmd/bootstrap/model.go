package bootstrap

import (
	"staybook/internal/infra/mlmodel"
	"staybook/internal/pkg/config"
	"staybook/internal/usecase/commands"

	"go.uber.org/fx"
)

// ModelModule loads the manifest once at startup. A missing or malformed
// manifest aborts boot instead of serving unclassified prices.
var ModelModule = fx.Module("model",
	fx.Provide(
		NewManifest,
		mlmodel.NewRestyClient,
		fx.Annotate(
			mlmodel.NewPriceModel,
			fx.As(new(commands.PriceModel)),
		),
		fx.Annotate(
			mlmodel.NewClusterModel,
			fx.As(new(commands.ClusterModel)),
		),
	),
)

func NewManifest(cfg config.Config) (*mlmodel.Manifest, error) {
	return mlmodel.LoadManifest(cfg.Model.ManifestPath)
}
