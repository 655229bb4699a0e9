package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/Belphemur/tvfinder/internal/config"
	"github.com/Belphemur/tvfinder/internal/metrics"
	"github.com/Belphemur/tvfinder/internal/models"
)

// SearchShows issues GET {base}/search/shows?q={term}. The term is trimmed and
// NFC-normalised so equivalent spellings share one cache entry.
func (c *client) SearchShows(ctx context.Context, term string) ([]models.Show, error) {
	logger := config.GetLogger()

	term = norm.NFC.String(strings.TrimSpace(term))
	searchURL := fmt.Sprintf("%s/search/shows?%s", c.baseURL, url.Values{"q": {term}}.Encode())

	logger.Info().Str("term", term).Msg("Searching shows")

	shows, err := fetchRecords(ctx, c, upstreamCall{
		endpoint: metrics.EndpointSearch,
		op:       "search shows",
		url:      searchURL,
	}, c.showParser)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("term", term).Int("count", len(shows)).Msg("Show search completed")
	return shows, nil
}
