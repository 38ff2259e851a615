package components

import (
	"arbitat/internal/pkg/clock"
	"arbitat/internal/usecase"
	"arbitat/internal/usecase/commands"
	"arbitat/internal/usecase/queries"

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
		commands.NewDecisionUseCase,
		commands.NewListingUseCase,
		commands.NewPaymentUseCase,
		commands.NewFavoriteUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewListingQueries,
		queries.NewMatchQueries,
		queries.NewBookingQueries,
		queries.NewOwnerQueries,
		queries.NewFavoriteQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
