package components

import (
	"pta-storefront/internal/infra/readstore"
	"pta-storefront/internal/infra/session"
	sqlc "pta-storefront/internal/infra/sqlc/generated"
	"pta-storefront/internal/infra/uow"
	"pta-storefront/internal/pkg/config"
	"pta-storefront/internal/usecase/queries"
	"pta-storefront/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	writeModule,
	sessionModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Event
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.EventReadQueries)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventReadStore)),
			fx.As(new(shared.EventCatalog)),
		),
		// Transaction
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TransactionReadQueries)),
		),
		fx.Annotate(
			readstore.NewTransactionReadStore,
			fx.As(new(queries.TransactionReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

// Repositories are built per transaction by the unit of work.
var writeModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

var sessionModule = fx.Module("persistence/session",
	fx.Provide(
		fx.Annotate(
			NewSessionStore,
			fx.As(new(shared.SessionStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewSessionStore(client *redis.Client, cfg config.Config) *session.RedisStore {
	return session.NewRedisStore(client, cfg.Session.TTL)
}
