package checkers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type slowPinger struct{ delay time.Duration }

func (p slowPinger) Ping(ctx context.Context) error {
	select {
	case <-time.After(p.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestPingChecker(t *testing.T) {
	c := NewRedisChecker(slowPinger{})
	assert.Equal(t, "redis", c.Name())
	assert.NoError(t, c.Check(context.Background()))

	slow := NewPostgresChecker(slowPinger{delay: time.Second})
	slow.Timeout = 10 * time.Millisecond
	assert.Equal(t, "postgres", slow.Name())
	assert.True(t, errors.Is(slow.Check(context.Background()), context.DeadlineExceeded))
}
