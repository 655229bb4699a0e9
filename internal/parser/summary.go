package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SummaryText strips the markup from a show summary and collapses whitespace,
// for surfaces that cannot render HTML (terminal output).
func SummaryText(summary string) string {
	if strings.TrimSpace(summary) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(summary))
	if err != nil {
		return strings.Join(strings.Fields(summary), " ")
	}

	return strings.Join(strings.Fields(doc.Text()), " ")
}
