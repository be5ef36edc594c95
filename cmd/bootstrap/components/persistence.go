package components

import (
	"staybook/internal/infra/db"
	"staybook/internal/infra/readstore"
	"staybook/internal/infra/uow"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Repositories are built per transaction inside the unit of work, so only
// the UoW itself and the pool-backed read stores live in the graph.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewPropertyReadStore,
			fx.As(new(queries.PropertyReadStore)),
		),
		fx.Annotate(
			readstore.NewSearchReadStore,
			fx.As(new(queries.SearchReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			readstore.NewClusterSource,
			fx.As(new(commands.ClusterSource)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
