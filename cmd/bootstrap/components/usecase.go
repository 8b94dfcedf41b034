package components

import (
	"expertbook/internal/notification"
	"expertbook/internal/pkg/clock"
	"expertbook/internal/usecase/commands"
	"expertbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		notification.NewLogSender,
		fx.As(new(notification.Sender)),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewExpertQueries,
		queries.NewEventTypeQueries,
		queries.NewBookingQueries,
		queries.NewSlotQueries,
		queries.NewCalendarQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewExpertCommands,
		commands.NewEventTypeCommands,
		commands.NewBookingCommands,
	),
)
