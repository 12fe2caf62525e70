package menu

import (
	"strings"
	"testing"

	"github.com/bipuldey19/sportsonline/internal/listing"
	"github.com/bipuldey19/sportsonline/internal/nav"
)

func featuredSet() listing.Set {
	return listing.Group([]listing.RawSection{
		{Label: "Today's Top Matches", Entries: []listing.RawEntry{
			{Title: "Arsenal vs Spurs", Ref: "https://example.org/m/1", Live: true, Score: "1 - 0"},
			{Title: "Milan vs Inter", Ref: "https://example.org/m/2"},
			{Title: "Ajax vs PSV", Ref: "https://example.org/m/3"},
		}},
		{Label: "28th August 2026", Entries: []listing.RawEntry{
			{Title: "Lyon vs Nice", Ref: "https://example.org/m/4"},
			{Title: "Porto vs Braga", Ref: "https://example.org/m/5"},
			{Title: "Betis vs Celta", Ref: "https://example.org/m/6"},
		}},
	}, true)
}

func controls() Controls {
	return Controls{
		Key:  "sh",
		Prev: nav.Action{Verb: nav.GoPrev},
		Next: nav.Action{Verb: nav.GoNext},
		Home: nav.Action{Verb: nav.GoHome},
	}
}

func TestRenderFeaturedPage(t *testing.T) {
	set := featuredSet()
	reg := listing.NewRegistry()

	view, err := listing.ResolvePage(set, 0)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	text, rows, err := Render(view, reg, controls())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(text, "Today's Top Matches") {
		t.Fatalf("text = %q", text)
	}
	// Three single-column item rows plus the navigation row.
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}
	for i := 0; i < 3; i++ {
		if len(rows[i]) != 1 {
			t.Fatalf("featured row %d has %d buttons, want 1", i, len(rows[i]))
		}
	}
	if !strings.HasPrefix(rows[0][0].Text, "🔴 ") || !strings.Contains(rows[0][0].Text, "(1 - 0)") {
		t.Fatalf("live item label = %q", rows[0][0].Text)
	}
	if rows[1][0].Text != "Milan vs Inter" {
		t.Fatalf("static item label = %q", rows[1][0].Text)
	}

	navRow := rows[3]
	if len(navRow) != 2 {
		t.Fatalf("nav row = %d buttons, want indicator+next", len(navRow))
	}
	if navRow[0].Text != "1/2" || navRow[0].Unique != NoopKey {
		t.Fatalf("indicator = %+v", navRow[0])
	}
	if navRow[1].Text != NextLabel || navRow[1].Data != "next" {
		t.Fatalf("next = %+v", navRow[1])
	}
}

func TestRenderRegularPage(t *testing.T) {
	set := featuredSet()
	reg := listing.NewRegistry()

	view, err := listing.ResolvePage(set, 1)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	text, rows, err := Render(view, reg, controls())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(text, "28th August 2026") {
		t.Fatalf("text = %q", text)
	}
	// Two grid rows (2+1 items), navigation row, home row.
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}
	if len(rows[0]) != 2 || len(rows[1]) != 1 {
		t.Fatalf("grid rows = %d,%d, want 2,1", len(rows[0]), len(rows[1]))
	}

	navRow := rows[2]
	if len(navRow) != 2 {
		t.Fatalf("nav row = %d buttons, want prev+indicator", len(navRow))
	}
	if navRow[0].Text != PrevLabel || navRow[0].Data != "prev" {
		t.Fatalf("prev = %+v", navRow[0])
	}
	if navRow[1].Text != "2/2" {
		t.Fatalf("indicator = %q", navRow[1].Text)
	}

	home := rows[3]
	if len(home) != 1 || home[0].Text != HomeLabel || home[0].Data != "home" {
		t.Fatalf("home row = %+v", home)
	}
}

func TestRenderPayloadsAreStable(t *testing.T) {
	set := featuredSet()
	reg := listing.NewRegistry()

	view, _ := listing.ResolvePage(set, 0)
	_, first, err := Render(view, reg, controls())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	_, second, err := Render(view, reg, controls())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if first[0][0].Data != second[0][0].Data {
		t.Fatalf("interned payload changed across renders: %q vs %q", first[0][0].Data, second[0][0].Data)
	}

	a, err := nav.Parse(first[0][0].Data)
	if err != nil {
		t.Fatalf("parse item payload: %v", err)
	}
	if a.Verb != nav.SelectItem {
		t.Fatalf("verb = %v, want item", a.Verb)
	}
	ref, ok := reg.Resolve(listing.ShortID(a.ID))
	if !ok || ref != "https://example.org/m/1" {
		t.Fatalf("resolved ref = %q ok=%v", ref, ok)
	}
}
