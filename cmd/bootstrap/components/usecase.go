package components

import (
	"flexin/internal/infra/mailer"
	"flexin/internal/pkg/clock"
	"flexin/internal/pkg/config"
	"flexin/internal/usecase"
	"flexin/internal/usecase/commands"
	"flexin/internal/usecase/queries"

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
	func(cfg config.Config) mailer.Mailer {
		return mailer.NewMailer(cfg.SMTP)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingUseCase,
		commands.NewSwapUseCase,
		commands.NewSettingsUseCase,
		commands.NewUserUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewCapacityQueries,
		queries.NewSwapQueries,
		queries.NewStatsQueries,
		queries.NewSettingsQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
