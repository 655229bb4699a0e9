package parser

import "strings"

// DefaultImageURL is shown for shows the directory has no artwork for.
const DefaultImageURL = "https://tinyurl.com/tv-missing"

// ImageSet is the image object attached to a show by the directory.
// The directory sends null when a show has no artwork.
type ImageSet struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// ResolveImage returns the medium-size image URL of raw, or DefaultImageURL
// when raw is nil or carries no medium URL. The result is never empty.
func ResolveImage(raw *ImageSet) string {
	if raw == nil {
		return DefaultImageURL
	}
	if medium := strings.TrimSpace(raw.Medium); medium != "" {
		return medium
	}
	return DefaultImageURL
}
