package notifier

import (
	"context"
	"log/slog"

	"table-booking/internal/usecase/shared"
)

// LogPublisher writes jobs to the log. Used in local and test environments.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger.With("component", "notifier", "transport", TransportLog)}
}

func (p *LogPublisher) Publish(ctx context.Context, job shared.NotificationJob) error {
	p.logger.InfoContext(ctx, "notification published",
		"job_id", job.ID,
		"kind", job.Kind,
		"topic", job.Topic,
		"attempt", job.Attempts+1,
		"payload", string(job.Payload))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
