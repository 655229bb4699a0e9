package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Belphemur/tvfinder/internal/apperrors"
	"github.com/Belphemur/tvfinder/internal/config"
	"github.com/Belphemur/tvfinder/internal/metrics"
	"github.com/Belphemur/tvfinder/internal/parser"
)

// upstreamCall describes one directory request.
type upstreamCall struct {
	endpoint string // metrics label
	op       string // error prefix
	url      string
}

// fetchRecords performs call (or serves it from the cache) and decodes the body
// with p. Bodies are cached only once they decode, so a malformed response is
// never replayed.
func fetchRecords[T any](ctx context.Context, c *client, call upstreamCall, p parser.Parser[T]) ([]T, error) {
	logger := config.GetLogger()

	body, cached := c.cachedBody(call.url)
	if !cached {
		var err error
		body, err = c.fetchBody(ctx, call)
		if err != nil {
			return nil, err
		}
	}

	records, err := p.Parse(bytes.NewReader(body))
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(call.endpoint, "decode_error").Inc()
		logger.Error().Err(err).Str("url", call.url).Bool("cached", cached).Msg("Failed to decode TVMaze response")
		return nil, apperrors.NewMalformedResponseError(call.op, err)
	}

	outcome := "ok"
	if cached {
		outcome = "cached"
	} else if c.cache != nil {
		c.cache.Set(call.url, body)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(call.endpoint, outcome).Inc()

	return records, nil
}

func (c *client) cachedBody(url string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}
	body, ok := c.cache.Get(url)
	if ok {
		logger := config.GetLogger()
		logger.Debug().Str("url", url).Int("size", len(body)).Msg("Serving TVMaze response from cache")
	}
	return body, ok
}

// fetchBody performs an HTTP GET and returns the UTF-8 response body.
// Non-2xx responses are returned as *apperrors.ErrUpstream.
func (c *client) fetchBody(ctx context.Context, call upstreamCall) ([]byte, error) {
	logger := config.GetLogger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, call.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	metrics.UpstreamRequestDuration.WithLabelValues(call.endpoint).Observe(elapsed.Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(call.endpoint, "transport_error").Inc()
		logger.Error().Err(err).Str("url", call.url).Dur("elapsed", elapsed).Msg("TVMaze request failed")
		return nil, apperrors.NewUpstreamError(call.op, call.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UpstreamRequestsTotal.WithLabelValues(call.endpoint, "http_error").Inc()
		logger.Warn().Int("status", resp.StatusCode).Str("url", call.url).Dur("elapsed", elapsed).Msg("TVMaze returned non-2xx status")
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, apperrors.NewUpstreamStatusError(call.op, call.url, resp.StatusCode)
	}

	reader, err := parser.NewUTF8Reader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(call.endpoint, "decode_error").Inc()
		return nil, apperrors.NewMalformedResponseError(call.op, err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(call.endpoint, "transport_error").Inc()
		return nil, apperrors.NewUpstreamError(call.op, call.url, fmt.Errorf("read body: %w", err))
	}

	logger.Debug().
		Str("url", call.url).
		Int("status", resp.StatusCode).
		Int("size", len(body)).
		Dur("elapsed", elapsed).
		Msg("Fetched TVMaze response")
	return body, nil
}
