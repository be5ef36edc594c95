package bootstrap

import (
	"staybook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Infra is everything below the use cases. The recluster job needs it
// without the HTTP surface.
var Infra = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	ModelModule,
	components.PersistenceModule,
)

var Module = fx.Options(
	Infra,
	CacheModule,
	JWTModule,
	MessagingModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.WorkerModule,
)
