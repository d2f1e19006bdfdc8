package components

import (
	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/config"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/shared"
	"table-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		func(uow shared.UnitOfWork, publisher worker.Publisher, clk clock.Clock, cfg config.Config) *worker.Dispatcher {
			return worker.NewDispatcher(uow, publisher, clk, cfg.Worker)
		},
		func(cmds commands.ReminderCommands, cfg config.Config) *worker.ReminderScheduler {
			return worker.NewReminderScheduler(cmds, cfg.Worker.ReminderInterval)
		},
	),
)
