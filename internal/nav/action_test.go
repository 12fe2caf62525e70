package nav

import (
	"strings"
	"testing"
)

func TestEncodeParseRoundtrip(t *testing.T) {
	tests := []struct {
		name    string
		action  Action
		payload string
	}{
		{"item", Action{Verb: SelectItem, ID: "42"}, "item_42"},
		{"category", Action{Verb: SelectCategory, ID: "football", Page: 1}, "cat_football_1"},
		{"category with underscore", Action{Verb: SelectCategory, ID: "table_tennis", Page: 3}, "cat_table_tennis_3"},
		{"filter", Action{Verb: SelectFilter, ID: "live", Page: 2}, "filter_live_2"},
		{"goto", Action{Verb: GotoPage, ID: "all", Page: 7}, "page_all_7"},
		{"home", Action{Verb: GoHome}, "home"},
		{"next", Action{Verb: GoNext}, "next"},
		{"prev", Action{Verb: GoPrev}, "prev"},
		{"noop", Action{Verb: Noop}, "noop"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := tt.action.Encode()
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if payload != tt.payload {
				t.Fatalf("payload = %q, want %q", payload, tt.payload)
			}
			back, err := Parse(payload)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if back != tt.action {
				t.Fatalf("roundtrip = %+v, want %+v", back, tt.action)
			}
		})
	}
}

func TestEncodeRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		action Action
	}{
		{"item without id", Action{Verb: SelectItem}},
		{"category without page", Action{Verb: SelectCategory, ID: "football"}},
		{"oversized id", Action{Verb: SelectItem, ID: strings.Repeat("x", 80)}},
		{"non ascii id", Action{Verb: SelectItem, ID: "idü"}},
		{"unknown verb", Action{Verb: Verb(200)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.action.Encode(); err == nil {
				t.Fatal("expected encode error")
			}
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	payloads := []string{
		"",
		"bogus_1",
		"item",
		"cat_football",
		"page_all_zero",
		"page_all_0",
		"next_extra",
		strings.Repeat("a", MaxPayloadLen+1),
	}
	for _, p := range payloads {
		if _, err := Parse(p); err == nil {
			t.Fatalf("parse(%q) should fail", p)
		}
	}
}
