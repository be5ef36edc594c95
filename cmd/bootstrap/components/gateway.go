package components

import (
	"staybook/internal/infra/cache"
	"staybook/internal/infra/gateway"
	"staybook/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			gateway.NewStripeGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			gateway.NewStripeWebhookVerifier,
			fx.As(new(commands.WebhookVerifier)),
		),
		fx.Annotate(
			cache.NewWebhookDeduper,
			fx.As(new(commands.WebhookDeduper)),
		),
	),
)
