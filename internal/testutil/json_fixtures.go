package testutil

import (
	"encoding/json"
	"strconv"
)

// ShowOptions contains options for generating a /search/shows result item
type ShowOptions struct {
	ID      int
	Name    string
	Summary string
	Score   float64
	// MediumImage is the image.medium URL. When both MediumImage and
	// OriginalImage are empty the image field is rendered as JSON null.
	MediumImage   string
	OriginalImage string
}

// EpisodeOptions contains options for generating a /shows/{id}/episodes item
type EpisodeOptions struct {
	ID      int
	Name    string
	Season  int
	Number  int
	Airdate string
}

// GenerateSearchJSON builds a search response body shaped like the directory's:
// [{"score": 0.9, "show": {"id": 1, "name": "...", "summary": "...", "image": {...}|null}}]
func GenerateSearchJSON(shows []ShowOptions) string {
	items := make([]map[string]any, 0, len(shows))
	for _, s := range shows {
		var image any
		if s.MediumImage != "" || s.OriginalImage != "" {
			img := map[string]any{}
			if s.MediumImage != "" {
				img["medium"] = s.MediumImage
			}
			if s.OriginalImage != "" {
				img["original"] = s.OriginalImage
			}
			image = img
		}

		items = append(items, map[string]any{
			"score": s.Score,
			"show": map[string]any{
				"id":       s.ID,
				"url":      "https://www.tvmaze.com/shows/" + strconv.Itoa(s.ID),
				"name":     s.Name,
				"type":     "Scripted",
				"language": "English",
				"summary":  s.Summary,
				"image":    image,
			},
		})
	}
	return mustMarshal(items)
}

// GenerateEpisodesJSON builds an episode list response body shaped like the directory's.
func GenerateEpisodesJSON(episodes []EpisodeOptions) string {
	items := make([]map[string]any, 0, len(episodes))
	for _, e := range episodes {
		items = append(items, map[string]any{
			"id":      e.ID,
			"url":     "https://www.tvmaze.com/episodes/" + strconv.Itoa(e.ID),
			"name":    e.Name,
			"season":  e.Season,
			"number":  e.Number,
			"type":    "regular",
			"airdate": e.Airdate,
			"runtime": 60,
		})
	}
	return mustMarshal(items)
}

// BatmanSearchJSON is a two-result search body where only the first show has artwork.
func BatmanSearchJSON() string {
	return GenerateSearchJSON([]ShowOptions{
		{ID: 1, Name: "Batman", Summary: "<p>The <b>Caped</b> Crusader.</p>", Score: 0.9, MediumImage: "https://static.tvmaze.com/uploads/images/medium_portrait/6/16463.jpg"},
		{ID: 2, Name: "Batman: The Animated Series", Summary: "<p>Animated.</p>", Score: 0.7},
	})
}

// PilotEpisodesJSON is a single-episode body for show 139.
func PilotEpisodesJSON() string {
	return GenerateEpisodesJSON([]EpisodeOptions{
		{ID: 1, Name: "Pilot", Season: 1, Number: 1, Airdate: "2014-04-06"},
	})
}

func mustMarshal(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
