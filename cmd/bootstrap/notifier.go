package bootstrap

import (
	"context"
	"log/slog"

	"table-booking/internal/infra/notifier"
	"table-booking/internal/pkg/config"
	"table-booking/internal/worker"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewPublisher,
		func(p notifier.Publisher) worker.Publisher { return p },
	),
)

// The logger parameter orders construction after the slog default is installed.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, _ *slog.Logger) (notifier.Publisher, error) {
	p, err := notifier.NewPublisher(cfg.Notify)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})

	return p, nil
}
