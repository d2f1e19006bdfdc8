package worker

import (
	"context"
	"log/slog"
	"time"

	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/config"
	"table-booking/internal/usecase/shared"
)

const (
	publishTimeout = 10 * time.Second
	maxBackoff     = time.Hour
	maxErrorLength = 1000
)

type Publisher interface {
	Publish(ctx context.Context, job shared.NotificationJob) error
}

// Dispatcher relays queued notification jobs to the publisher. It polls on an
// interval and also drains immediately after Wake.
type Dispatcher struct {
	uow         shared.UnitOfWork
	publisher   Publisher
	clock       clock.Clock
	interval    time.Duration
	batchSize   int
	maxAttempts int
	lease       time.Duration
	wake        chan struct{}
	logger      *slog.Logger
}

func NewDispatcher(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, cfg config.WorkerConfig) *Dispatcher {
	d := &Dispatcher{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		interval:    cfg.OutboxInterval,
		batchSize:   cfg.OutboxBatchSize,
		maxAttempts: cfg.OutboxMaxAttempts,
		wake:        make(chan struct{}, 1),
		logger:      slog.With("component", "outbox"),
	}
	if d.interval <= 0 {
		d.interval = 5 * time.Second
	}
	if d.batchSize <= 0 {
		d.batchSize = 50
	}
	if d.maxAttempts <= 0 {
		d.maxAttempts = 5
	}
	// long enough for every job in a batch to hit the publish timeout
	d.lease = publishTimeout * time.Duration(d.batchSize)
	return d
}

// Wake never blocks; a pending wake-up absorbs further calls.
func (d *Dispatcher) Wake() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Run blocks until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.logger.Info("outbox dispatcher started",
		"interval", d.interval.String(),
		"batch_size", d.batchSize)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("outbox dispatcher stopped")
			return nil
		case <-ticker.C:
		case <-d.wake:
		}
		d.drain(ctx)
	}
}

func (d *Dispatcher) drain(ctx context.Context) {
	for ctx.Err() == nil {
		n, err := d.RunOnce(ctx)
		if err != nil {
			d.logger.Warn("outbox batch failed", "error", err.Error())
			return
		}
		if n < d.batchSize {
			return
		}
	}
}

// RunOnce leases one batch of due jobs, publishes each with no transaction
// open and records every outcome in its own transaction. A job whose outcome
// could not be recorded is retried once its lease runs out. The returned
// error only reports a failed lease.
func (d *Dispatcher) RunOnce(ctx context.Context) (int, error) {
	var jobs []shared.NotificationJob
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		jobs, err = tx.Notifications().LeaseDue(ctx, tx.DB(), d.batchSize, d.clock.Now().Add(d.lease))
		return err
	}, shared.WithMaxRetries(0))
	if err != nil {
		return 0, err
	}

	for _, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		if err := d.deliver(ctx, job); err != nil {
			d.logger.Warn("notification outcome not recorded",
				"job_id", job.ID,
				"topic", job.Topic,
				"error", err.Error())
		}
	}
	return len(jobs), nil
}

func (d *Dispatcher) deliver(ctx context.Context, job shared.NotificationJob) error {
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	perr := d.publisher.Publish(pubCtx, job)
	cancel()

	if perr == nil {
		return d.record(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Notifications().MarkSent(ctx, tx.DB(), job.ID)
		})
	}

	attempts := job.Attempts + 1
	lastError := truncate(perr.Error(), maxErrorLength)

	if attempts >= d.maxAttempts {
		d.logger.Error("notification job failed permanently",
			"job_id", job.ID,
			"topic", job.Topic,
			"attempts", attempts,
			"error", lastError)
		return d.record(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, lastError)
		})
	}

	runAt := d.clock.Now().Add(Backoff(d.interval, attempts))
	d.logger.Warn("notification publish failed, rescheduled",
		"job_id", job.ID,
		"topic", job.Topic,
		"attempts", attempts,
		"run_at", runAt,
		"error", lastError)
	return d.record(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().Reschedule(ctx, tx.DB(), job.ID, lastError, runAt)
	})
}

func (d *Dispatcher) record(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return d.uow.Within(ctx, fn, shared.WithMaxRetries(0))
}

// Backoff doubles base per attempt, capped at one hour.
func Backoff(base time.Duration, attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	wait := base
	for i := 1; i < attempts; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
