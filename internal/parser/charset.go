package parser

import (
	"io"

	"golang.org/x/net/html/charset"
)

// NewUTF8Reader wraps an io.Reader so the body is converted to UTF-8 according
// to the charset declared in contentType (e.g. "application/json; charset=iso-8859-1").
//
// When contentType declares no charset the content is sniffed; JSON bodies
// without a BOM are treated as UTF-8 and passed through unchanged.
func NewUTF8Reader(body io.Reader, contentType string) (io.Reader, error) {
	return charset.NewReader(body, contentType)
}
