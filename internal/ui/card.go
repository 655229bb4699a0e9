package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ShowIDAttr is the attribute every rendered card carries its show id in.
const ShowIDAttr = "data-show-id"

// ErrInvalidShowID is returned when a card has no usable show id.
var ErrInvalidShowID = errors.New("invalid show id")

// Card is the element an "Episodes" action was triggered from.
// *goquery.Selection satisfies it.
type Card interface {
	Attr(name string) (string, bool)
}

// ShowIDFromCard reads the show id stored on card itself.
func ShowIDFromCard(card Card) (int, error) {
	if card == nil {
		return 0, fmt.Errorf("%w: no card", ErrInvalidShowID)
	}

	raw, ok := card.Attr(ShowIDAttr)
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", ErrInvalidShowID, ShowIDAttr)
	}
	return ParseShowID(raw)
}

// ParseShowID converts a textual show id into its numeric form.
func ParseShowID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidShowID, raw)
	}
	return id, nil
}
