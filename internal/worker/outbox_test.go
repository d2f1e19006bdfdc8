//go:build unit

package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/config"
	"table-booking/internal/usecase/shared"
	"table-booking/internal/worker"
	uowmock "table-booking/tests/mock/uow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	mu   sync.Mutex
	err  error
	sent []shared.NotificationJob
}

func (p *fakePublisher) Publish(_ context.Context, job shared.NotificationJob) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, job)
	return nil
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sent)
}

// observingPublisher records the outbox state seen at publish time.
type observingPublisher struct {
	mem      *uowmock.Memory
	commits  []int
	statuses []string
}

func (p *observingPublisher) Publish(_ context.Context, job shared.NotificationJob) error {
	p.commits = append(p.commits, p.mem.Commits)
	p.statuses = append(p.statuses, jobByID(p.mem, job.ID).Status)
	return nil
}

func jobByID(mem *uowmock.Memory, id uuid.UUID) uowmock.JobRow {
	for _, j := range mem.Jobs() {
		if j.ID == id {
			return j
		}
	}
	return uowmock.JobRow{}
}

func newDispatcher(pub worker.Publisher, maxAttempts int) (*worker.Dispatcher, *uowmock.Memory, *clock.MockClock) {
	clk := clock.NewMockClock(time.Date(2030, 1, 10, 9, 0, 0, 0, time.UTC))
	mem := uowmock.NewMemory(clk.Now)
	d := worker.NewDispatcher(mem, pub, clk, config.WorkerConfig{
		OutboxInterval:    time.Second,
		OutboxBatchSize:   10,
		OutboxMaxAttempts: maxAttempts,
	})
	return d, mem, clk
}

func TestDispatcherRunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("due jobs are published and marked sent", func(t *testing.T) {
		pub := &fakePublisher{}
		d, mem, clk := newDispatcher(pub, 3)
		due := mem.EnqueueJob("booking.confirmed", []byte(`{"a":1}`), clk.Now())
		later := mem.EnqueueJob("booking.reminder", []byte(`{}`), clk.Now().Add(time.Hour))

		n, err := d.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, uowmock.JobSent, jobByID(mem, due).Status)
		assert.Equal(t, uowmock.JobPending, jobByID(mem, later).Status)
		require.Len(t, pub.sent, 1)
		assert.Equal(t, "booking.confirmed", pub.sent[0].Topic)
	})

	t.Run("publish failure reschedules with backoff", func(t *testing.T) {
		pub := &fakePublisher{err: errors.New("broker down")}
		d, mem, clk := newDispatcher(pub, 3)
		id := mem.EnqueueJob("booking.confirmed", nil, clk.Now())

		n, err := d.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		job := jobByID(mem, id)
		assert.Equal(t, uowmock.JobPending, job.Status)
		assert.Equal(t, 1, job.Attempts)
		assert.Equal(t, "broker down", job.LastError)
		assert.Equal(t, clk.Now().Add(time.Second), job.RunAt)

		// not due again until the backoff elapses
		n, err = d.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		clk.Add(time.Second)
		_, err = d.RunOnce(ctx)
		require.NoError(t, err)
		job = jobByID(mem, id)
		assert.Equal(t, 2, job.Attempts)
		assert.Equal(t, clk.Now().Add(2*time.Second), job.RunAt)
	})

	t.Run("job fails permanently at max attempts", func(t *testing.T) {
		pub := &fakePublisher{err: errors.New("broker down")}
		d, mem, clk := newDispatcher(pub, 2)
		id := mem.EnqueueJob("booking.confirmed", nil, clk.Now())

		_, err := d.RunOnce(ctx)
		require.NoError(t, err)
		clk.Add(time.Minute)
		_, err = d.RunOnce(ctx)
		require.NoError(t, err)

		job := jobByID(mem, id)
		assert.Equal(t, uowmock.JobFailed, job.Status)
		assert.Equal(t, 2, job.Attempts)

		clk.Add(time.Hour)
		n, err := d.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("lease failure is returned and rolled back", func(t *testing.T) {
		pub := &fakePublisher{}
		d, mem, _ := newDispatcher(pub, 3)
		mem.FailNext("Notifications.LeaseDue", errors.New("connection reset"))

		_, err := d.RunOnce(ctx)
		require.Error(t, err)
		assert.Equal(t, 1, mem.Rollbacks)
		assert.Zero(t, pub.count())
	})

	t.Run("publish runs after the lease commits", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2030, 1, 10, 9, 0, 0, 0, time.UTC))
		mem := uowmock.NewMemory(clk.Now)
		pub := &observingPublisher{mem: mem}
		d := worker.NewDispatcher(mem, pub, clk, config.WorkerConfig{OutboxInterval: time.Second, OutboxBatchSize: 10})
		first := mem.EnqueueJob("booking.confirmed", nil, clk.Now())
		second := mem.EnqueueJob("booking.cancelled", nil, clk.Now())

		n, err := d.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		// one lease commit, then one commit per recorded outcome
		assert.Equal(t, []int{1, 2}, pub.commits)
		assert.Equal(t, []string{uowmock.JobSending, uowmock.JobSending}, pub.statuses)
		assert.Equal(t, 3, mem.Commits)
		assert.Equal(t, uowmock.JobSent, jobByID(mem, first).Status)
		assert.Equal(t, uowmock.JobSent, jobByID(mem, second).Status)
	})

	t.Run("unrecorded outcome leaves the rest of the batch sent", func(t *testing.T) {
		pub := &fakePublisher{}
		d, mem, clk := newDispatcher(pub, 3)
		first := mem.EnqueueJob("booking.confirmed", nil, clk.Now())
		second := mem.EnqueueJob("booking.cancelled", nil, clk.Now())
		mem.FailNext("Notifications.MarkSent", errors.New("connection reset"))

		n, err := d.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, 2, pub.count())
		assert.Equal(t, 1, mem.Rollbacks)
		assert.Equal(t, uowmock.JobSending, jobByID(mem, first).Status)
		assert.Equal(t, uowmock.JobSent, jobByID(mem, second).Status)

		// leased, not due until the lease runs out
		n, err = d.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		clk.Add(100 * time.Second)
		n, err = d.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, 3, pub.count())
		assert.Equal(t, uowmock.JobSent, jobByID(mem, first).Status)
	})
}

func TestDispatcherWake(t *testing.T) {
	pub := &fakePublisher{}
	clk := clock.NewMockClock(time.Date(2030, 1, 10, 9, 0, 0, 0, time.UTC))
	mem := uowmock.NewMemory(clk.Now)
	d := worker.NewDispatcher(mem, pub, clk, config.WorkerConfig{OutboxInterval: time.Hour})

	// repeated wakes before Run starts must not block
	for range 5 {
		d.Wake()
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	require.Eventually(t, func() bool { return pub.count() == 0 }, time.Second, 10*time.Millisecond)

	mem.EnqueueJob("booking.confirmed", nil, clk.Now())
	d.Wake()
	require.Eventually(t, func() bool { return pub.count() == 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher did not stop")
	}
}

func TestBackoff(t *testing.T) {
	cases := []struct {
		attempts int
		want     time.Duration
	}{
		{attempts: 0, want: 5 * time.Second},
		{attempts: 1, want: 5 * time.Second},
		{attempts: 2, want: 10 * time.Second},
		{attempts: 4, want: 40 * time.Second},
		{attempts: 30, want: time.Hour},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, worker.Backoff(5*time.Second, tc.attempts), "attempts=%d", tc.attempts)
	}
}
