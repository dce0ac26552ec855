package application

import (
	"context"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/dashwallet/walletd/config"
	"github.com/dashwallet/walletd/internal/core/ports"
	"github.com/dashwallet/walletd/pkg/circuitbreaker"
)

// engineWatcher funnels all watch-address requests toward the sync engine
// through a rate limiter and a circuit breaker, so that bursts of derived
// addresses neither flood nor hammer a failing engine.
type engineWatcher struct {
	engine  ports.SyncEngine
	breaker *gobreaker.CircuitBreaker
	limiter *rate.Limiter
}

func newEngineWatcher(engine ports.SyncEngine) *engineWatcher {
	return &engineWatcher{
		engine:  engine,
		breaker: circuitbreaker.NewCircuitBreaker("syncengine"),
		limiter: rate.NewLimiter(
			rate.Limit(config.GetInt(config.WatchRateLimitKey)),
			config.GetInt(config.WatchRateBurstKey),
		),
	}
}

func (w *engineWatcher) watch(ctx context.Context, address string) error {
	if err := w.limiter.Wait(ctx); err != nil {
		return err
	}

	_, err := w.breaker.Execute(func() (interface{}, error) {
		return nil, w.engine.WatchAddress(ctx, address)
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return ErrServiceUnavailable
	}
	return err
}
