// Command recluster recomputes every property's cluster label once and
// exits. It is meant to run from cron after the model is retrained.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"staybook/cmd/bootstrap"
	"staybook/internal/usecase/commands"

	"go.uber.org/fx"
)

func run(lc fx.Lifecycle, shutdowner fx.Shutdowner, clusters commands.ClusterCommands, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
				defer cancel()

				code := 0
				result, err := clusters.RefreshClusters(ctx)
				if err != nil {
					logger.Error("cluster refresh failed", "error", err)
					code = 1
				} else {
					logger.Info("cluster refresh finished", "properties", result.Properties, "assigned", result.Assigned)
				}
				_ = shutdowner.Shutdown(fx.ExitCode(code))
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Infra,
		fx.Provide(commands.NewClusterUseCase),
		fx.Invoke(run),
		fx.NopLogger,
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start recluster", "error", err)
		os.Exit(1)
	}

	sig := <-app.Wait()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop recluster cleanly", "error", err)
	}
	os.Exit(sig.ExitCode)
}
