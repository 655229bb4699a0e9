package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Belphemur/tvfinder/internal/apperrors"
	"github.com/Belphemur/tvfinder/internal/config"
	"github.com/Belphemur/tvfinder/internal/metrics"
	"github.com/Belphemur/tvfinder/internal/models"
)

// GetEpisodesOfShow issues GET {base}/shows/{id}/episodes. A 404 from the
// directory is reported as *apperrors.ErrNotFound for the show.
func (c *client) GetEpisodesOfShow(ctx context.Context, showID int) ([]models.Episode, error) {
	logger := config.GetLogger()
	logger.Info().Int("showID", showID).Msg("Loading episodes")

	episodes, err := fetchRecords(ctx, c, upstreamCall{
		endpoint: metrics.EndpointEpisodes,
		op:       "list episodes",
		url:      fmt.Sprintf("%s/shows/%d/episodes", c.baseURL, showID),
	}, c.episodeParser)
	if err != nil {
		var upstream *apperrors.ErrUpstream
		if errors.As(err, &upstream) && upstream.StatusCode == http.StatusNotFound {
			return nil, apperrors.NewShowNotFoundError(showID)
		}
		return nil, err
	}

	logger.Info().Int("showID", showID).Int("count", len(episodes)).Msg("Episode list loaded")
	return episodes, nil
}
