package models

// Show represents a TV show returned by a directory search.
// Image is never empty: it falls back to a fixed placeholder when the
// directory has no artwork for the show.
type Show struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary"`
	Image   string `json:"image"`
}
