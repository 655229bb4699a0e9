package ui

import (
	"context"

	"github.com/Belphemur/tvfinder/internal/models"
)

// fakeDirectory records calls and answers from canned data.
type fakeDirectory struct {
	shows       []models.Show
	searchErr   error
	episodes    map[int][]models.Episode
	episodesErr error

	searchTerms []string
	episodeIDs  []int
}

func (f *fakeDirectory) SearchShows(_ context.Context, term string) ([]models.Show, error) {
	f.searchTerms = append(f.searchTerms, term)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.shows, nil
}

func (f *fakeDirectory) GetEpisodesOfShow(_ context.Context, showID int) ([]models.Episode, error) {
	f.episodeIDs = append(f.episodeIDs, showID)
	if f.episodesErr != nil {
		return nil, f.episodesErr
	}
	return f.episodes[showID], nil
}
