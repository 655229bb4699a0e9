// Package reporting forwards upstream failures to Sentry. Every function is a
// no-op until Init has been called with a non-empty DSN.
package reporting

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Belphemur/tvfinder/internal/config"
)

var enabled atomic.Bool

// Init configures the Sentry client. An empty dsn leaves reporting disabled.
func Init(dsn, environment, release string) error {
	enabled.Store(false)
	if dsn == "" {
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		Release:     release,
	}); err != nil {
		return err
	}

	enabled.Store(true)
	logger := config.GetLogger()
	logger.Info().Str("environment", environment).Msg("Sentry error reporting enabled")
	return nil
}

// Enabled reports whether events are currently being sent.
func Enabled() bool {
	return enabled.Load()
}

// CaptureError sends err with the given tags. Cancelled requests are not
// reported since they originate from the caller going away.
func CaptureError(err error, tags map[string]string) {
	if err == nil || !enabled.Load() || errors.Is(err, context.Canceled) {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}

// Flush waits up to timeout for buffered events to be delivered.
func Flush(timeout time.Duration) bool {
	if !enabled.Load() {
		return true
	}
	return sentry.Flush(timeout)
}
