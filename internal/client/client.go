package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/Belphemur/tvfinder/internal/cache"
	"github.com/Belphemur/tvfinder/internal/config"
	"github.com/Belphemur/tvfinder/internal/models"
	"github.com/Belphemur/tvfinder/internal/parser"
)

// Client defines the interface for querying the TVMaze show directory
type Client interface {
	// SearchShows runs one directory search and returns the matching shows in
	// directory order. An empty term is sent as-is.
	SearchShows(ctx context.Context, term string) ([]models.Show, error)

	// GetEpisodesOfShow returns every episode of the show in directory order.
	GetEpisodesOfShow(ctx context.Context, showID int) ([]models.Episode, error)

	// Close releases any resources held by the client (e.g., cache connections).
	Close() error
}

// client implements the Client interface
type client struct {
	httpClient    *http.Client
	baseURL       string
	userAgent     string
	cache         cache.Cache
	showParser    parser.Parser[models.Show]
	episodeParser parser.Parser[models.Episode]
}

// NewClient creates a new client instance with proxy, cache and circuit
// breaker configuration taken from cfg. A cache that cannot be created is
// logged and the client runs uncached.
func NewClient(cfg *config.Config) Client {
	logger := config.GetLogger()

	timeout := 30 * time.Second // default
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, using default 30s")
		} else {
			timeout = parsedTimeout
		}
	}

	// Clone DefaultTransport to preserve all its settings (timeouts, connection pooling, HTTP/2, etc.)
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	var transport http.RoundTripper = newCompressionTransport(baseTransport)
	if cfg.Breaker.Enabled {
		transport = newBreakerTransport(transport, cfg)
	}

	baseURL := cfg.TVMazeBaseURL
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.GetUserAgent()
	}

	return &client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		baseURL:       baseURL,
		userAgent:     userAgent,
		cache:         newResponseCache(cfg),
		showParser:    parser.NewShowParser(),
		episodeParser: parser.NewEpisodeParser(),
	}
}

// Close releases any resources held by the client, such as cache connections.
func (c *client) Close() error {
	if c.cache == nil {
		return nil
	}
	return c.cache.Close()
}
