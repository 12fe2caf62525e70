package app

import (
	"testing"

	"github.com/bipuldey19/sportsonline/internal/source/streamed"
)

func TestSelectorTitle(t *testing.T) {
	cases := []struct {
		selector string
		want     string
	}{
		{streamed.SelectorAll, "All Popular Matches:"},
		{streamed.SelectorToday, "Today's Matches:"},
		{streamed.SelectorLive, "🔴 Live Matches:"},
		{"basketball", "Popular basketball matches:"},
	}
	for _, tc := range cases {
		if got := selectorTitle(tc.selector); got != tc.want {
			t.Errorf("selectorTitle(%q) = %q, want %q", tc.selector, got, tc.want)
		}
	}
}
