package components

import (
	"time"

	"parkhub/internal/domain/reservation"
	"parkhub/internal/pkg/clock"
	"parkhub/internal/pkg/config"
	"parkhub/internal/usecase"
	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"
	"parkhub/internal/usecase/shared"

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
	reservation.NewFactory,
	func(cfg config.Config) (*time.Location, error) {
		return cfg.Parking.Location()
	},
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewParkingQueries,
		queries.NewReservationQueries,
		queries.NewSessionQueries,
		queries.NewSubscriptionQueries,
		func(reads queries.AvailabilityReadStore, cfg config.Config) queries.AvailabilityQueries {
			return queries.NewAvailabilityQueries(reads, cfg.Parking.AvailabilityWindow)
		},
		func(reads queries.RevenueReadStore, loc *time.Location) queries.RevenueQueries {
			return queries.NewRevenueQueries(reads, loc)
		},
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewParkingCommands,
		commands.NewReservationCommands,
		commands.NewSubscriptionCommands,
		func(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.SessionCommands {
			return commands.NewSessionCommands(uow, clk, cfg.Parking.PenaltyPerHour)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
