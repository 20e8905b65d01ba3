package components

import (
	"thejulge/internal/pkg/clock"
	"thejulge/internal/usecase"
	"thejulge/internal/usecase/commands"
	"thejulge/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewListingOrchestrator,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewListingQueries,
		queries.NewProfileQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewProfileCommands,
		commands.NewApplicationCommands,
	),
)
