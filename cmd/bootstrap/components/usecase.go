package components

import (
	"staybook/internal/domain/reservation"
	"staybook/internal/pkg/clock"
	"staybook/internal/usecase"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		reservation.NewFactory,
		commands.NewRoomClassifier,
		usecase.NewTokenValidator,
	),
	commandsModule,
	queriesModule,
)

var commandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewCatalogUseCase,
		commands.NewReviewUseCase,
		commands.NewFavoriteUseCase,
		commands.NewPreferenceUseCase,
		commands.NewClusterUseCase,
	),
)

var queriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPropertyQueries,
		queries.NewSearchQueries,
		queries.NewReservationQueries,
		queries.NewPaymentQueries,
		queries.NewReviewQueries,
		queries.NewUserQueries,
	),
)
