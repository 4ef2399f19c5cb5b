package components

import (
	"miyzapis/internal/infra"
	"miyzapis/internal/infra/readstore"
	"miyzapis/internal/infra/uow"
	"miyzapis/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Read stores behind their query-side ports
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReader)),
		),
		fx.Annotate(
			readstore.NewSpecialistReadStore,
			fx.As(new(queries.SpecialistReader)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceReader)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}
