package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"gorm.io/gorm"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/health"
)

// dbPinger abstracts the *sql.DB methods used in Probe so tests can inject
// a fake without standing up a real database.
type dbPinger interface {
	PingContext(ctx context.Context) error
}

// Probe wraps the database connection with a circuit breaker for the deep
// health endpoint. After three consecutive failures the breaker opens and
// probes return "circuit open" immediately.
type Probe struct {
	cb   *gobreaker.CircuitBreaker
	ping func(ctx context.Context) error
}

// NewProbe builds a Probe over the gorm handle.
func NewProbe(db *gorm.DB, cb *gobreaker.CircuitBreaker) (*Probe, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrapping sql.DB: %w", err)
	}
	return newProbe(sqlDB, cb), nil
}

func newProbe(p dbPinger, cb *gobreaker.CircuitBreaker) *Probe {
	return &Probe{
		cb:   cb,
		ping: p.PingContext,
	}
}

// Probe pings Postgres through the circuit breaker.
func (p *Probe) Probe(ctx context.Context) health.ProbeResult {
	start := time.Now()

	_, err := p.cb.Execute(func() (any, error) {
		if err := p.ping(ctx); err != nil {
			return nil, fmt.Errorf("ping: %w", err)
		}
		return nil, nil
	})

	latency := time.Since(start).Milliseconds()

	if err != nil {
		errMsg := err.Error()
		if errors.Is(err, gobreaker.ErrOpenState) {
			errMsg = "circuit open"
		}
		return health.ProbeResult{Name: "postgres", OK: false, LatencyMs: latency, Error: errMsg}
	}

	return health.ProbeResult{Name: "postgres", OK: true, LatencyMs: latency}
}

// NewBreaker returns a circuit breaker that trips after 3 consecutive
// failures and resets after 30 seconds in the open state.
func NewBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    0,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
}
