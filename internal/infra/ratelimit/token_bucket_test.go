//go:build unit

package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"table-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScripter answers EVALSHA with a canned reply and records the call.
type fakeScripter struct {
	redis.Scripter
	reply any
	err   error
	keys  []string
	args  []any
}

func (f *fakeScripter) EvalSha(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	f.keys = keys
	f.args = args
	return redis.NewCmdResult(f.reply, f.err)
}

func newBucket(s redis.Scripter) *TokenBucket {
	b := NewTokenBucket(s, config.RateLimitConfig{Capacity: 10, Refill: 2, Interval: time.Second, TTL: time.Minute})
	b.now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }
	return b
}

func TestTokenBucketAllow(t *testing.T) {
	ctx := context.Background()

	t.Run("allowed", func(t *testing.T) {
		s := &fakeScripter{reply: []any{int64(1), int64(9), int64(0)}}
		d, err := newBucket(s).Allow(ctx, "user:42:GET /bookings")
		require.NoError(t, err)

		assert.Equal(t, Decision{Allowed: true, Limit: 10, Remaining: 9}, d)
		assert.Equal(t, []string{"ratelimit:user:42:GET /bookings"}, s.keys)
		assert.Equal(t, []any{int64(1_700_000_000_000), 10, 2, int64(1000), int64(60)}, s.args)
	})

	t.Run("denied", func(t *testing.T) {
		s := &fakeScripter{reply: []any{int64(0), int64(0), int64(1500)}}
		d, err := newBucket(s).Allow(ctx, "ip:127.0.0.1")
		require.NoError(t, err)

		assert.False(t, d.Allowed)
		assert.Equal(t, 1500*time.Millisecond, d.RetryAfter)
		assert.Equal(t, "2", d.RetryAfterSeconds())
	})

	t.Run("redis error", func(t *testing.T) {
		s := &fakeScripter{err: errors.New("connection refused")}
		_, err := newBucket(s).Allow(ctx, "ip:127.0.0.1")
		assert.ErrorContains(t, err, "rate limit script failed")
	})

	t.Run("malformed reply", func(t *testing.T) {
		s := &fakeScripter{reply: []any{int64(1)}}
		_, err := newBucket(s).Allow(ctx, "ip:127.0.0.1")
		assert.ErrorContains(t, err, "unexpected rate limit result length 1")
	})
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, "1", Decision{}.RetryAfterSeconds())
	assert.Equal(t, "1", Decision{RetryAfter: 200 * time.Millisecond}.RetryAfterSeconds())
	assert.Equal(t, "3", Decision{RetryAfter: 3 * time.Second}.RetryAfterSeconds())
}
