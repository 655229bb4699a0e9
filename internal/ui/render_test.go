package ui

import (
	"strings"
	"testing"

	"github.com/Belphemur/tvfinder/internal/models"
	"github.com/Belphemur/tvfinder/internal/parser"
)

func newTestPage(t *testing.T) *Page {
	t.Helper()
	page, err := NewPage("")
	if err != nil {
		t.Fatalf("NewPage() failed: %v", err)
	}
	return page
}

func batmanShows() []models.Show {
	return []models.Show{
		{ID: 1, Name: "Batman", Summary: "<p>The <b>Caped</b> Crusader.</p>", Image: "https://static.tvmaze.com/uploads/images/medium_portrait/6/16463.jpg"},
		{ID: 2, Name: "Batman: The Animated Series", Summary: "<p>Animated.</p>", Image: parser.DefaultImageURL},
	}
}

func TestPopulateShows_CardMarkup(t *testing.T) {
	page := newTestPage(t)
	regions := page.Regions()

	if err := PopulateShows(regions.Shows, batmanShows()); err != nil {
		t.Fatalf("PopulateShows() failed: %v", err)
	}

	cards := page.Cards()
	if cards.Length() != 2 {
		t.Fatalf("expected 2 cards, got %d", cards.Length())
	}

	first := cards.Eq(0)
	if id, _ := first.Attr("data-show-id"); id != "1" {
		t.Errorf("first card id = %q, want 1", id)
	}
	if !first.HasClass("Show") || !first.HasClass("col-lg-6") {
		t.Errorf("unexpected card classes %q", first.AttrOr("class", ""))
	}
	if got := first.Find("h5").Text(); got != "Batman" {
		t.Errorf("name = %q, want Batman", got)
	}
	if got := first.Find("img").AttrOr("src", ""); got != batmanShows()[0].Image {
		t.Errorf("img src = %q", got)
	}
	if got := first.Find("img").AttrOr("alt", ""); got != "Batman" {
		t.Errorf("img alt = %q", got)
	}
	if got := first.Find("small b").Text(); got != "Caped" {
		t.Errorf("summary markup should be kept, bold text = %q", got)
	}
	if first.Find(".Show-getEpisodes").Length() != 1 {
		t.Error("expected one Episodes button inside the card")
	}

	second := cards.Eq(1)
	if got := second.Find("img").AttrOr("src", ""); got != parser.DefaultImageURL {
		t.Errorf("second card image = %q, want default", got)
	}
}

func TestPopulateShows_Idempotent(t *testing.T) {
	page := newTestPage(t)
	regions := page.Regions()

	for i := 0; i < 2; i++ {
		if err := PopulateShows(regions.Shows, batmanShows()); err != nil {
			t.Fatalf("PopulateShows() call %d failed: %v", i, err)
		}
	}

	if got := page.Cards().Length(); got != 2 {
		t.Errorf("expected exactly one card set (2 cards), got %d", got)
	}
}

func TestPopulateShows_EscapesName(t *testing.T) {
	page := newTestPage(t)
	shows := []models.Show{{ID: 7, Name: `<script>alert("x")</script>`, Image: parser.DefaultImageURL}}

	if err := PopulateShows(page.Regions().Shows, shows); err != nil {
		t.Fatalf("PopulateShows() failed: %v", err)
	}

	card := page.Cards().First()
	if card.Find("script").Length() != 0 {
		t.Error("show name must not be interpreted as markup")
	}
	if got := card.Find("h5").Text(); got != shows[0].Name {
		t.Errorf("name text = %q, want %q", got, shows[0].Name)
	}
}

func TestPopulateShows_EmptyClearsRegion(t *testing.T) {
	page := newTestPage(t)
	regions := page.Regions()

	if err := PopulateShows(regions.Shows, batmanShows()); err != nil {
		t.Fatalf("PopulateShows() failed: %v", err)
	}
	if err := PopulateShows(regions.Shows, nil); err != nil {
		t.Fatalf("PopulateShows(nil) failed: %v", err)
	}

	if got := page.Cards().Length(); got != 0 {
		t.Errorf("expected no cards, got %d", got)
	}
}

func TestPopulateEpisodes(t *testing.T) {
	page := newTestPage(t)
	regions := page.Regions()

	if regions.EpisodesArea.Visible() {
		t.Fatal("episodes area should start hidden")
	}

	episodes := []models.Episode{
		{ID: 1, Name: "Pilot", Season: 1, Number: 1},
		{ID: 2, Name: "Rock & Roll", Season: 2, Number: 10},
	}
	if err := PopulateEpisodes(regions.EpisodesList, regions.EpisodesArea, episodes); err != nil {
		t.Fatalf("PopulateEpisodes() failed: %v", err)
	}

	items := page.Document().Find("#episodesList li")
	if items.Length() != 2 {
		t.Fatalf("expected 2 items, got %d", items.Length())
	}
	if got := items.Eq(0).Text(); got != "Pilot (Season 1, Number 1)" {
		t.Errorf("first item = %q", got)
	}
	if got := items.Eq(1).Text(); got != "Rock & Roll (Season 2, Number 10)" {
		t.Errorf("second item = %q", got)
	}
	if !regions.EpisodesArea.Visible() {
		t.Error("episodes area should be visible after populating")
	}

	// Repopulating replaces the list.
	if err := PopulateEpisodes(regions.EpisodesList, regions.EpisodesArea, episodes[:1]); err != nil {
		t.Fatalf("PopulateEpisodes() failed: %v", err)
	}
	if got := page.Document().Find("#episodesList li").Length(); got != 1 {
		t.Errorf("expected 1 item after repopulating, got %d", got)
	}
}

func TestPage_RenderContainsRegions(t *testing.T) {
	page, err := NewPage(`law & order`)
	if err != nil {
		t.Fatalf("NewPage() failed: %v", err)
	}

	var sb strings.Builder
	if err := page.Render(&sb); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	out := sb.String()

	for _, id := range []string{ShowsListID, EpisodesAreaID, EpisodesListID, StatusAreaID, "searchForm"} {
		if !strings.Contains(out, `id="`+id+`"`) {
			t.Errorf("rendered page is missing #%s", id)
		}
	}
	if got := page.Document().Find("#searchForm-term").AttrOr("value", ""); got != "law & order" {
		t.Errorf("search term = %q, want it echoed", got)
	}
}

func TestPage_Fragment(t *testing.T) {
	page := newTestPage(t)
	regions := page.Regions()
	if err := PopulateEpisodes(regions.EpisodesList, regions.EpisodesArea, []models.Episode{{ID: 1, Name: "Pilot", Season: 1, Number: 1}}); err != nil {
		t.Fatalf("PopulateEpisodes() failed: %v", err)
	}

	fragment, err := page.Fragment(EpisodesListID)
	if err != nil {
		t.Fatalf("Fragment() failed: %v", err)
	}
	if !strings.HasPrefix(fragment, `<ul id="episodesList">`) {
		t.Errorf("fragment = %q", fragment)
	}
	if !strings.Contains(fragment, "<li>Pilot (Season 1, Number 1)</li>") {
		t.Errorf("fragment is missing the episode line: %q", fragment)
	}

	if _, err := page.Fragment("nope"); err == nil {
		t.Error("expected an error for an unknown id")
	}
}
