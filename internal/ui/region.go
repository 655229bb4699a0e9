package ui

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Region is a named display area of the page. Render functions and the
// controller only ever see regions, never the document they live in.
type Region interface {
	// Empty removes every child of the region.
	Empty()
	// AppendHTML parses markup and appends the resulting nodes.
	AppendHTML(markup string)
	Show()
	Hide()
	Visible() bool
}

const hiddenStyle = "display: none"

// domRegion is a Region backed by a goquery selection of a single element.
type domRegion struct {
	sel *goquery.Selection
}

// NewRegion wraps sel as a Region.
func NewRegion(sel *goquery.Selection) Region {
	return &domRegion{sel: sel}
}

func (r *domRegion) Empty() {
	r.sel.Empty()
}

func (r *domRegion) AppendHTML(markup string) {
	r.sel.AppendHtml(markup)
}

func (r *domRegion) Show() {
	r.sel.RemoveAttr("style")
}

func (r *domRegion) Hide() {
	r.sel.SetAttr("style", hiddenStyle)
}

func (r *domRegion) Visible() bool {
	style, ok := r.sel.Attr("style")
	if !ok {
		return true
	}
	return !strings.Contains(strings.ReplaceAll(style, " ", ""), "display:none")
}
