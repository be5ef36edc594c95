package bootstrap

import (
	"context"

	"staybook/internal/infra/outbox"
	"staybook/internal/pkg/config"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		fx.Annotate(
			NewKafkaPublisher,
			fx.As(new(outbox.Publisher)),
		),
	),
)

func NewKafkaPublisher(lc fx.Lifecycle, cfg config.Config) (*outbox.KafkaPublisher, error) {
	pub, err := outbox.NewKafkaPublisher(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})

	return pub, nil
}
