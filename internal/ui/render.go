package ui

import (
	"fmt"

	"github.com/Belphemur/tvfinder/internal/models"
)

// PopulateShows replaces the content of region with one card per show, in
// order. Calling it twice with the same shows leaves a single card set.
func PopulateShows(region Region, shows []models.Show) error {
	region.Empty()

	for _, show := range shows {
		markup, err := execute("show_card.html", newCardView(show))
		if err != nil {
			return fmt.Errorf("render show %d: %w", show.ID, err)
		}
		region.AppendHTML(markup)
	}
	return nil
}

// PopulateEpisodes replaces the content of list with one line per episode and
// reveals area.
func PopulateEpisodes(list, area Region, episodes []models.Episode) error {
	list.Empty()

	for _, episode := range episodes {
		markup, err := execute("episode_item.html", episode)
		if err != nil {
			return fmt.Errorf("render episode %d: %w", episode.ID, err)
		}
		list.AppendHTML(markup)
	}

	area.Show()
	return nil
}

// showStatus writes message into the status region and reveals it.
func showStatus(region Region, message string) {
	region.Empty()
	markup, err := execute("status.html", message)
	if err != nil {
		// The status template only prints a string.
		markup = message
	}
	region.AppendHTML(markup)
	region.Show()
}

func clearStatus(region Region) {
	region.Empty()
	region.Hide()
}
