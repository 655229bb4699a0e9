package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/Belphemur/tvfinder/internal/config"
	"github.com/Belphemur/tvfinder/internal/ui"
)

// NewRouter builds the gin engine serving every route over directory.
func NewRouter(directory ui.Directory, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(),
		gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/healthz"})),
	)

	h := NewHandler(directory)
	h.RegisterRoutes(r)
	h.RegisterAPIRoutes(r.Group("/api", cors.New(corsConfig(cfg))))

	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		MaxAge:       12 * time.Hour,
	}
	if cfg == nil || len(cfg.CORS.AllowedOrigins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	return c
}

// NewHTTPServer wraps handler in an http.Server listening on address:port.
func NewHTTPServer(address string, port int, handler http.Handler) *http.Server {
	if port == 0 {
		port = 8080
	}
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", address, port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
	}
}
