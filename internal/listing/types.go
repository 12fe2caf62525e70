// Package listing holds the pagination core: grouping of scraped match
// data into ordered sections, window-based page resolution, short id
// interning for callback payloads, and per-user page tracking.
package listing

// ResourceRef is an opaque upstream locator for a single match. For the
// HTML source it is the absolute match page URL; for the API source it is
// a "selector/matchID" composite.
type ResourceRef string

// ShortID is a compact interned token standing in for a ResourceRef so
// callback payloads stay within Telegram's 64-byte limit.
type ShortID string

// Item is one selectable match inside a section. Items are immutable once
// produced for a fetch cycle.
type Item struct {
	Ref   ResourceRef
	Title string
	Live  bool
	Score string
}

// RawEntry is an unvalidated upstream record before grouping. Entries with
// an empty title or ref are dropped silently.
type RawEntry struct {
	Title string
	Ref   string
	Live  bool
	Score string
}

// RawSection couples a section label with its unvalidated entries.
type RawSection struct {
	Label   string
	Entries []RawEntry
}

// Section is a named, ordered group of items (one calendar date, or the
// featured group).
type Section struct {
	Label string
	Items []Item
}

// Set is the ordered section sequence produced by one fetch. HasTop marks
// the first section as the distinguished featured section, which renders
// whole on logical page 0 and is never window-sliced.
type Set struct {
	Sections []Section
	HasTop   bool
}

// Empty reports whether the set holds no items at all.
func (s Set) Empty() bool {
	for _, sec := range s.Sections {
		if len(sec.Items) > 0 {
			return false
		}
	}
	return true
}

// Top returns the featured section when present.
func (s Set) Top() (Section, bool) {
	if !s.HasTop || len(s.Sections) == 0 {
		return Section{}, false
	}
	return s.Sections[0], true
}

// Regular returns the non-featured sections in order.
func (s Set) Regular() []Section {
	if s.HasTop && len(s.Sections) > 0 {
		return s.Sections[1:]
	}
	return s.Sections
}
