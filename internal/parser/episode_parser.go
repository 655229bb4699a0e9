package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Belphemur/tvfinder/internal/config"
	"github.com/Belphemur/tvfinder/internal/models"
)

// EpisodeParser decodes episode list responses into Episode records.
// Fields are copied as-is; nothing is defaulted.
type EpisodeParser struct{}

// NewEpisodeParser creates a new episode list parser.
func NewEpisodeParser() Parser[models.Episode] {
	return &EpisodeParser{}
}

// Parse decodes a JSON array of episode objects in directory order.
func (p *EpisodeParser) Parse(body io.Reader) ([]models.Episode, error) {
	logger := config.GetLogger()

	var episodes []models.Episode
	if err := json.NewDecoder(body).Decode(&episodes); err != nil {
		return nil, fmt.Errorf("decode episodes: %w", err)
	}
	if episodes == nil {
		episodes = []models.Episode{}
	}

	logger.Debug().Int("count", len(episodes)).Msg("Parsed episode list")
	return episodes, nil
}
