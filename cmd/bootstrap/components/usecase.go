package components

import (
	"time"

	"table-booking/internal/domain/booking"
	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/config"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"
	"table-booking/internal/usecase/shared"
	"table-booking/internal/worker"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewServiceLocation,
	func(clk clock.Clock, loc *time.Location, cfg config.Config) *booking.Factory {
		return booking.NewFactory(clk, loc, cfg.Booking.AutoConfirm)
	},
	// the outbox dispatcher is woken after every commit that queues a job
	func(d *worker.Dispatcher) shared.Notifier { return d },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewRestaurantCommands,
		commands.NewReminderUseCase,
		func(
			uow shared.UnitOfWork,
			viewer commands.BookingViewer,
			factory *booking.Factory,
			notifier shared.Notifier,
			clk clock.Clock,
			cfg config.Config,
		) commands.BookingCommands {
			return commands.NewBookingUseCase(uow, viewer, factory, notifier, clk, cfg.Booking)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewRestaurantQueries,
		queries.NewBookingQueries,
		queries.NewRewardQueries,
	),
)

// NewServiceLocation is the zone that defines "today" for bookings, rewards and reminders.
func NewServiceLocation(cfg config.Config) *time.Location {
	return cfg.Booking.Location()
}
