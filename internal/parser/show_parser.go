package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Belphemur/tvfinder/internal/config"
	"github.com/Belphemur/tvfinder/internal/models"
)

// searchResult is one element of the /search/shows response array.
type searchResult struct {
	Score float64      `json:"score"`
	Show  *showPayload `json:"show"`
}

type showPayload struct {
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	Summary string    `json:"summary"`
	Image   *ImageSet `json:"image"`
}

// ShowParser decodes search responses into Show records.
type ShowParser struct{}

// NewShowParser creates a new show search parser.
func NewShowParser() Parser[models.Show] {
	return &ShowParser{}
}

// Parse decodes a JSON array of search results and maps each nested show to a
// models.Show, keeping the order returned by the directory.
func (p *ShowParser) Parse(body io.Reader) ([]models.Show, error) {
	logger := config.GetLogger()

	var results []searchResult
	if err := json.NewDecoder(body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode search results: %w", err)
	}

	shows := make([]models.Show, 0, len(results))
	for i, result := range results {
		if result.Show == nil {
			return nil, fmt.Errorf("search result %d has no show object", i)
		}
		shows = append(shows, models.Show{
			ID:      result.Show.ID,
			Name:    result.Show.Name,
			Summary: result.Show.Summary,
			Image:   ResolveImage(result.Show.Image),
		})
	}

	logger.Debug().Int("count", len(shows)).Msg("Parsed show search results")
	return shows, nil
}
