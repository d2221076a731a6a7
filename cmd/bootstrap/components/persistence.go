package components

import (
	"stayhub/internal/infra/db"
	"stayhub/internal/infra/notify"
	"stayhub/internal/infra/readstore"
	"stayhub/internal/infra/repository"
	"stayhub/internal/infra/uow"
	"stayhub/internal/infra/verifystore"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Idempotency gate runs outside the booking transaction
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(commands.IdempotencyGate)),
		),
		// Read side
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Verification code storage and delivery
		fx.Annotate(
			verifystore.NewRedisStore,
			fx.As(new(commands.VerificationStore)),
		),
		fx.Annotate(
			notify.NewOutboxSender,
			fx.As(new(commands.CodeSender)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
