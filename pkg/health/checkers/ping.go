package checkers

import (
	"context"
	"time"
)

// Pinger is satisfied by *pgxpool.Pool and *cache.Redis.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingChecker reports a dependency as ready when Ping answers within Timeout.
type PingChecker struct {
	name    string
	target  Pinger
	Timeout time.Duration
}

func NewPingChecker(name string, target Pinger) *PingChecker {
	return &PingChecker{name: name, target: target, Timeout: time.Second}
}

func NewPostgresChecker(pool Pinger) *PingChecker { return NewPingChecker("postgres", pool) }

func NewRedisChecker(client Pinger) *PingChecker { return NewPingChecker("redis", client) }

func (c *PingChecker) Name() string { return c.name }

func (c *PingChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()
	return c.target.Ping(ctx)
}
