package components

import (
	"pta-storefront/internal/pkg/clock"
	"pta-storefront/internal/usecase"
	"pta-storefront/internal/usecase/commands"
	"pta-storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewStaffCommands,
		commands.NewCartCommands,
		commands.NewCheckoutCommands,
		commands.NewNotificationDispatcher,
		commands.NewOrderRecorder,
		commands.NewPaymentWebhookCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewEventQueries,
		queries.NewCartQueries,
		queries.NewTransactionQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
