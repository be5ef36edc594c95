package components

import (
	"context"
	"log/slog"

	"staybook/internal/infra/outbox"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		outbox.NewRelay,
	),
	fx.Invoke(runRelay),
)

func runRelay(lc fx.Lifecycle, relay *outbox.Relay, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("outbox relay started")
			go func() {
				defer close(done)
				relay.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			logger.Info("outbox relay stopped")
			return nil
		},
	})
}
