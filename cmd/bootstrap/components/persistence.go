package components

import (
	"expertbook/internal/infra"
	"expertbook/internal/infra/readstore"
	"expertbook/internal/infra/uow"
	"expertbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
	),
	readstoreModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewExpertReadStore,
			fx.As(new(queries.ExpertReadStore)),
		),
		fx.Annotate(
			readstore.NewEventTypeReadStore,
			fx.As(new(queries.EventTypeReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}
