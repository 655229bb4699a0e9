package ui

import (
	"errors"
	"testing"
)

type attrCard map[string]string

func (c attrCard) Attr(name string) (string, bool) {
	v, ok := c[name]
	return v, ok
}

func TestShowIDFromCard(t *testing.T) {
	tests := []struct {
		name    string
		card    Card
		want    int
		wantErr bool
	}{
		{name: "numeric", card: attrCard{ShowIDAttr: "139"}, want: 139},
		{name: "surrounding spaces", card: attrCard{ShowIDAttr: " 42 "}, want: 42},
		{name: "missing attribute", card: attrCard{}, wantErr: true},
		{name: "text", card: attrCard{ShowIDAttr: "data-show-id"}, wantErr: true},
		{name: "empty", card: attrCard{ShowIDAttr: ""}, wantErr: true},
		{name: "zero", card: attrCard{ShowIDAttr: "0"}, wantErr: true},
		{name: "negative", card: attrCard{ShowIDAttr: "-3"}, wantErr: true},
		{name: "nil card", card: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShowIDFromCard(tt.card)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidShowID) {
					t.Fatalf("expected ErrInvalidShowID, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ShowIDFromCard() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPage_FindCardAndCardForButton(t *testing.T) {
	page := newTestPage(t)
	if err := PopulateShows(page.Regions().Shows, batmanShows()); err != nil {
		t.Fatalf("PopulateShows() failed: %v", err)
	}

	card, ok := page.FindCard(2)
	if !ok {
		t.Fatal("expected to find card 2")
	}
	if id, err := ShowIDFromCard(card); err != nil || id != 2 {
		t.Errorf("FindCard(2) resolved to %d, %v", id, err)
	}

	if _, ok := page.FindCard(99); ok {
		t.Error("expected no card for an id that was not rendered")
	}

	buttons := page.Document().Find(".Show-getEpisodes")
	for i, want := range []int{1, 2} {
		owner, ok := page.CardForButton(buttons.Eq(i))
		if !ok {
			t.Fatalf("button %d has no owning card", i)
		}
		if id, err := ShowIDFromCard(owner); err != nil || id != want {
			t.Errorf("button %d resolved to %d, %v; want %d", i, id, err, want)
		}
	}

	if _, ok := page.CardForButton(page.Document().Find("#searchForm")); ok {
		t.Error("an element outside the show list must not resolve to a card")
	}
}
