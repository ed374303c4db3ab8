package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/health"
)

// redisPinger is implemented by the real go-redis client and by test doubles.
type redisPinger interface {
	PingResult(ctx context.Context) (string, error)
}

type realPinger struct{ client *redis.Client }

func (r *realPinger) PingResult(ctx context.Context) (string, error) {
	return r.client.Ping(ctx).Result()
}

// Probe wraps the session Redis connection with a circuit breaker for the
// deep health endpoint.
type Probe struct {
	cb     *gobreaker.CircuitBreaker
	pinger redisPinger
}

// NewProbe builds a Probe over the given Redis client.
func NewProbe(client *redis.Client, cb *gobreaker.CircuitBreaker) *Probe {
	return &Probe{cb: cb, pinger: &realPinger{client: client}}
}

// Probe sends a PING and validates the PONG response through the breaker.
func (p *Probe) Probe(ctx context.Context) health.ProbeResult {
	start := time.Now()

	_, err := p.cb.Execute(func() (any, error) {
		val, err := p.pinger.PingResult(ctx)
		if err != nil {
			return nil, fmt.Errorf("ping: %w", err)
		}
		if val != "PONG" {
			return nil, fmt.Errorf("unexpected PING response: %q", val)
		}
		return nil, nil
	})

	latency := time.Since(start).Milliseconds()

	if err != nil {
		errMsg := err.Error()
		if errors.Is(err, gobreaker.ErrOpenState) {
			errMsg = "circuit open"
		}
		return health.ProbeResult{Name: "redis", OK: false, LatencyMs: latency, Error: errMsg}
	}

	return health.ProbeResult{Name: "redis", OK: true, LatencyMs: latency}
}
