package listing

import (
	"errors"
	"fmt"
	"testing"
)

func buildSet(hasTop bool, sizes ...int) Set {
	var set Set
	set.HasTop = hasTop
	for s, size := range sizes {
		sec := Section{Label: fmt.Sprintf("section-%d", s)}
		if hasTop && s == 0 {
			sec.Label = "Top Matches"
		}
		for i := 0; i < size; i++ {
			sec.Items = append(sec.Items, Item{
				Ref:   ResourceRef(fmt.Sprintf("ref-%d-%d", s, i)),
				Title: fmt.Sprintf("match-%d-%d", s, i),
			})
		}
		set.Sections = append(set.Sections, sec)
	}
	return set
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		set   Set
		total int
	}{
		{"top plus 45 and 10", buildSet(true, 3, 45, 10), 4},
		{"top only", buildSet(true, 5), 1},
		{"no top single window", buildSet(false, 12), 1},
		{"no top two windows", buildSet(false, 31), 2},
		{"exact window boundary", buildSet(true, 2, 30, 30), 3},
		{"empty", Set{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPages(tt.set); got != tt.total {
				t.Fatalf("TotalPages = %d, want %d", got, tt.total)
			}
		})
	}
}

func TestResolvePageFeatured(t *testing.T) {
	set := buildSet(true, 3, 45, 10)

	view, err := ResolvePage(set, 0)
	if err != nil {
		t.Fatalf("resolve page 0: %v", err)
	}
	if !view.Featured || view.Columns != 1 {
		t.Fatalf("page 0 should render the featured section full width, got %+v", view)
	}
	if len(view.Items) != 3 {
		t.Fatalf("featured items = %d, want 3", len(view.Items))
	}
	if view.HasPrev || !view.HasNext {
		t.Fatalf("page 0 nav wrong: prev=%v next=%v", view.HasPrev, view.HasNext)
	}
	if view.TotalPages != 4 {
		t.Fatalf("total = %d, want 4", view.TotalPages)
	}
}

func TestResolvePageWindows(t *testing.T) {
	set := buildSet(true, 3, 45, 10)

	// Page 1: first window of the 45-item section.
	view, err := ResolvePage(set, 1)
	if err != nil {
		t.Fatalf("resolve page 1: %v", err)
	}
	if len(view.Items) != 30 || view.SectionLabel != "section-1" {
		t.Fatalf("page 1 = %d items of %q", len(view.Items), view.SectionLabel)
	}
	if view.Columns != 2 {
		t.Fatalf("regular pages render two columns, got %d", view.Columns)
	}

	// Page 2: remaining 15 items; the next section must not leak in.
	view, err = ResolvePage(set, 2)
	if err != nil {
		t.Fatalf("resolve page 2: %v", err)
	}
	if len(view.Items) != 15 {
		t.Fatalf("page 2 items = %d, want 15", len(view.Items))
	}
	for _, it := range view.Items {
		if it.Title == "match-2-0" {
			t.Fatal("section boundary crossed inside a window")
		}
	}
	if view.SectionLabel != "section-1" {
		t.Fatalf("page 2 section = %q", view.SectionLabel)
	}

	// Page 3: the 10-item section starts on its own page.
	view, err = ResolvePage(set, 3)
	if err != nil {
		t.Fatalf("resolve page 3: %v", err)
	}
	if len(view.Items) != 10 || view.SectionLabel != "section-2" {
		t.Fatalf("page 3 = %d items of %q", len(view.Items), view.SectionLabel)
	}
	if view.HasNext {
		t.Fatal("last page should not offer next")
	}
}

func TestResolvePageNoTop(t *testing.T) {
	set := buildSet(false, 31)

	view, err := ResolvePage(set, 0)
	if err != nil {
		t.Fatalf("resolve page 0: %v", err)
	}
	if view.Featured {
		t.Fatal("no featured section in this set")
	}
	if len(view.Items) != 30 || view.Columns != 2 {
		t.Fatalf("page 0 without top should be the first window, got %d items %d cols", len(view.Items), view.Columns)
	}

	view, err = ResolvePage(set, 1)
	if err != nil {
		t.Fatalf("resolve page 1: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("page 1 items = %d, want 1", len(view.Items))
	}
}

func TestResolvePageOutOfRange(t *testing.T) {
	set := buildSet(true, 3, 45, 10)
	for _, page := range []int{-1, 4, 99} {
		if _, err := ResolvePage(set, page); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("page %d: err = %v, want ErrOutOfRange", page, err)
		}
	}
	if _, err := ResolvePage(Set{}, 0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("empty set: err = %v, want ErrOutOfRange", err)
	}
}
