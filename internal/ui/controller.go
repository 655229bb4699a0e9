package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Belphemur/tvfinder/internal/apperrors"
	"github.com/Belphemur/tvfinder/internal/config"
	"github.com/Belphemur/tvfinder/internal/models"
)

var (
	// ErrNoResults is returned when episodes are requested before any search
	// has rendered show cards.
	ErrNoResults = errors.New("no search results displayed")

	// ErrCardNotFound is returned when the requested show is not among the
	// rendered cards.
	ErrCardNotFound = errors.New("show is not among the displayed results")
)

// CardFinder locates a rendered card by show id. *Page satisfies it.
type CardFinder interface {
	FindCard(showID int) (Card, bool)
}

// Directory is the show directory the controller queries.
type Directory interface {
	SearchShows(ctx context.Context, term string) ([]models.Show, error)
	GetEpisodesOfShow(ctx context.Context, showID int) ([]models.Episode, error)
}

// Regions groups the display areas of a page.
type Regions struct {
	Shows        Region
	EpisodesArea Region
	EpisodesList Region
	Status       Region
}

// State of the page controller.
type State int

const (
	Idle State = iota
	ShowingResults
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case ShowingResults:
		return "showing_results"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Controller drives one page through user actions. It is not safe for
// concurrent use; each request owns its own controller.
type Controller struct {
	directory Directory
	regions   Regions
	state     State
}

// NewController creates a controller in the Idle state.
func NewController(directory Directory, regions Regions) *Controller {
	return &Controller{
		directory: directory,
		regions:   regions,
		state:     Idle,
	}
}

// State returns the current controller state.
func (c *Controller) State() State {
	return c.state
}

// EpisodesVisible reports whether the episode area is shown.
func (c *Controller) EpisodesVisible() bool {
	return c.regions.EpisodesArea.Visible()
}

// Search runs a show search for term. On success the episode area is hidden
// and the results replace the show list. On failure the show and episode
// regions are left as they were and a message is written to the status area.
func (c *Controller) Search(ctx context.Context, term string) error {
	logger := config.GetLogger()

	shows, err := c.directory.SearchShows(ctx, term)
	if err != nil {
		logger.Error().Err(err).Str("term", term).Msg("Show search failed")
		showStatus(c.regions.Status, searchFailureMessage(err))
		return err
	}

	c.regions.EpisodesArea.Hide()
	if err := PopulateShows(c.regions.Shows, shows); err != nil {
		showStatus(c.regions.Status, "The results could not be displayed.")
		return err
	}
	clearStatus(c.regions.Status)

	c.state = ShowingResults
	logger.Debug().Str("term", term).Int("shows", len(shows)).Msg("Search results displayed")
	return nil
}

// ShowEpisodes loads and reveals the episodes of the show card belongs to.
func (c *Controller) ShowEpisodes(ctx context.Context, card Card) error {
	logger := config.GetLogger()

	if c.state != ShowingResults {
		showStatus(c.regions.Status, "Search for a show first.")
		return ErrNoResults
	}

	showID, err := ShowIDFromCard(card)
	if err != nil {
		showStatus(c.regions.Status, "That show could not be identified.")
		return err
	}

	episodes, err := c.directory.GetEpisodesOfShow(ctx, showID)
	if err != nil {
		logger.Error().Err(err).Int("showID", showID).Msg("Loading episodes failed")
		showStatus(c.regions.Status, episodesFailureMessage(err))
		return err
	}

	if err := PopulateEpisodes(c.regions.EpisodesList, c.regions.EpisodesArea, episodes); err != nil {
		showStatus(c.regions.Status, "The episodes could not be displayed.")
		return err
	}
	clearStatus(c.regions.Status)

	logger.Debug().Int("showID", showID).Int("episodes", len(episodes)).Msg("Episodes displayed")
	return nil
}

// ShowEpisodesFor resolves rawID against the rendered cards and shows that
// card's episodes. It is the request-driven form of clicking "Episodes".
func (c *Controller) ShowEpisodesFor(ctx context.Context, cards CardFinder, rawID string) error {
	if c.state != ShowingResults {
		showStatus(c.regions.Status, "Search for a show first.")
		return ErrNoResults
	}

	showID, err := ParseShowID(rawID)
	if err != nil {
		showStatus(c.regions.Status, "That show could not be identified.")
		return err
	}

	card, ok := cards.FindCard(showID)
	if !ok {
		showStatus(c.regions.Status, "That show is not in the current results.")
		return fmt.Errorf("%w: %d", ErrCardNotFound, showID)
	}
	return c.ShowEpisodes(ctx, card)
}

func searchFailureMessage(err error) string {
	if errors.Is(err, context.Canceled) {
		return "The search was cancelled."
	}
	return "Show search failed. Please try again."
}

func episodesFailureMessage(err error) string {
	switch {
	case errors.Is(err, &apperrors.ErrNotFound{}):
		return "That show could not be found."
	case errors.Is(err, context.Canceled):
		return "Loading episodes was cancelled."
	default:
		return "Episodes could not be loaded. Please try again."
	}
}
