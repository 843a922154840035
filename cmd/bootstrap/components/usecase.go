package components

import (
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/clock"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/commands"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	clock.NewZoneProvider,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewCreditUseCase,
		commands.NewCashUseCase,
		// Credit reads persist lazy expiry through the credit commands.
		func(c commands.CreditCommands) queries.CreditExpirer { return c },
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSlotQueries,
		queries.NewReservationQueries,
		queries.NewCreditQueries,
		queries.NewCajaQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
