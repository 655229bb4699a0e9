package ui

import (
	"bytes"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Region selectors of the page document.
const (
	ShowsListID    = "showsList"
	EpisodesAreaID = "episodesArea"
	EpisodesListID = "episodesList"
	StatusAreaID   = "statusArea"
)

// Page is one rendered document. It is built per request and never shared.
type Page struct {
	doc *goquery.Document
}

// NewPage builds an empty page whose search box is pre-filled with term.
func NewPage(term string) (*Page, error) {
	markup, err := execute("page.html", pageView{Term: term})
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}

	root, err := html.Parse(bytes.NewBufferString(markup))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	return &Page{doc: goquery.NewDocumentFromNode(root)}, nil
}

// Document exposes the underlying DOM.
func (p *Page) Document() *goquery.Document {
	return p.doc
}

func (p *Page) region(id string) Region {
	return NewRegion(p.doc.Find("#" + id))
}

// Regions returns the display areas the controller works on.
func (p *Page) Regions() Regions {
	return Regions{
		Shows:        p.region(ShowsListID),
		EpisodesArea: p.region(EpisodesAreaID),
		EpisodesList: p.region(EpisodesListID),
		Status:       p.region(StatusAreaID),
	}
}

// Cards returns every rendered show card in display order.
func (p *Page) Cards() *goquery.Selection {
	return p.doc.Find("#" + ShowsListID + " [" + ShowIDAttr + "]")
}

// FindCard returns the rendered card for showID.
func (p *Page) FindCard(showID int) (Card, bool) {
	sel := p.doc.Find(fmt.Sprintf(`#%s [%s="%d"]`, ShowsListID, ShowIDAttr, showID)).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return sel, true
}

// CardForButton resolves the card that owns a clicked "Episodes" button.
func (p *Page) CardForButton(button *goquery.Selection) (Card, bool) {
	sel := button.Closest("[" + ShowIDAttr + "]")
	if sel.Length() == 0 {
		return nil, false
	}
	return sel, true
}

// Render writes the whole document.
func (p *Page) Render(w io.Writer) error {
	return html.Render(w, p.doc.Get(0))
}

// Fragment returns the outer markup of the element with the given id.
func (p *Page) Fragment(id string) (string, error) {
	sel := p.doc.Find("#" + id)
	if sel.Length() == 0 {
		return "", fmt.Errorf("no element with id %q", id)
	}
	return goquery.OuterHtml(sel)
}
