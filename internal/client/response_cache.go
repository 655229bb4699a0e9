package client

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/Belphemur/tvfinder/internal/cache"
	"github.com/Belphemur/tvfinder/internal/config"
)

const (
	defaultCacheSize = 500
	defaultCacheTTL  = 5 * time.Minute
	cacheGroup       = "tvmaze"
)

// cacheLogger forwards cache backend errors to zerolog.
type cacheLogger struct {
	logger zerolog.Logger
}

func (l cacheLogger) Error(msg string, err error) {
	l.logger.Error().Err(err).Msg(msg)
}

// newResponseCache builds the upstream body cache from cfg.Cache, or returns
// nil when caching is disabled or the backend is unavailable.
func newResponseCache(cfg *config.Config) cache.Cache {
	logger := config.GetLogger()

	provider := cfg.Cache.Provider
	if provider == "" || provider == "none" {
		return nil
	}

	size := cfg.Cache.Size
	if size <= 0 {
		size = defaultCacheSize
	}

	ttl := defaultCacheTTL
	if cfg.Cache.TTL != "" {
		if parsed, err := time.ParseDuration(cfg.Cache.TTL); err != nil {
			logger.Warn().Err(err).Str("ttl", cfg.Cache.TTL).Msg("Invalid cache TTL, using default 5m")
		} else {
			ttl = parsed
		}
	}

	c, err := cache.New(provider, cache.ProviderConfig{
		Size:          size,
		TTL:           ttl,
		Logger:        cacheLogger{logger: logger},
		RedisAddress:  cfg.Cache.Redis.Address,
		RedisPassword: cfg.Cache.Redis.Password,
		RedisDB:       cfg.Cache.Redis.DB,
		BoltPath:      cfg.Cache.Bolt.Path,
		Group:         cacheGroup,
	})
	if err != nil {
		logger.Warn().Err(err).Str("provider", provider).Msg("Failed to create response cache, continuing uncached")
		return nil
	}

	logger.Info().
		Str("provider", provider).
		Int("size", size).
		Dur("ttl", ttl).
		Msg("Response cache enabled")
	return c
}
