package client

import (
	"net/http"
	"time"

	"github.com/failsafe-go/failsafe-go/circuitbreaker"
	"github.com/failsafe-go/failsafe-go/failsafehttp"

	"github.com/Belphemur/tvfinder/internal/config"
	"github.com/Belphemur/tvfinder/internal/metrics"
)

const (
	defaultBreakerThreshold = 5
	defaultBreakerDelay     = 30 * time.Second
)

// breakerFailure reports whether an upstream exchange counts against the
// breaker: transport errors, 5xx and 429 do; 404 and other client errors do not.
func breakerFailure(resp *http.Response, err error) bool {
	if err != nil {
		return true
	}
	return resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests
}

// newBreaker builds the circuit breaker guarding the directory API. After
// threshold consecutive failures calls fail fast with circuitbreaker.ErrOpen
// until delay has passed; a single trial call then decides whether it closes.
func newBreaker(threshold uint, delay time.Duration) circuitbreaker.CircuitBreaker[*http.Response] {
	logger := config.GetLogger()

	return circuitbreaker.NewBuilder[*http.Response]().
		HandleIf(breakerFailure).
		WithFailureThreshold(threshold).
		WithDelay(delay).
		OnStateChanged(func(e circuitbreaker.StateChangedEvent) {
			state := breakerStateName(e.NewState)
			metrics.BreakerStateChangesTotal.WithLabelValues(state).Inc()
			logger.Warn().
				Str("from", breakerStateName(e.OldState)).
				Str("to", state).
				Msg("TVMaze circuit breaker changed state")
		}).
		Build()
}

func breakerStateName(s circuitbreaker.State) string {
	switch s {
	case circuitbreaker.OpenState:
		return "open"
	case circuitbreaker.HalfOpenState:
		return "half_open"
	default:
		return "closed"
	}
}

// newBreakerTransport wraps next with the circuit breaker described by cfg.
func newBreakerTransport(next http.RoundTripper, cfg *config.Config) http.RoundTripper {
	threshold := cfg.Breaker.FailureThreshold
	if threshold == 0 {
		threshold = defaultBreakerThreshold
	}

	delay := defaultBreakerDelay
	if cfg.Breaker.Delay != "" {
		if parsed, err := time.ParseDuration(cfg.Breaker.Delay); err != nil {
			logger := config.GetLogger()
			logger.Warn().Err(err).Str("delay", cfg.Breaker.Delay).Msg("Invalid breaker delay, using default 30s")
		} else {
			delay = parsed
		}
	}

	return failsafehttp.NewRoundTripper(next, newBreaker(threshold, delay))
}
