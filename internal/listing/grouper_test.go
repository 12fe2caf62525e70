package listing

import "testing"

func TestGroupSkipsMalformedEntries(t *testing.T) {
	set := Group([]RawSection{
		{Label: "Saturday", Entries: []RawEntry{
			{Title: "A", Ref: "ref-1"},
			{Title: "", Ref: "ref-2"},
			{Title: "B", Ref: "ref-3"},
			{Title: "C", Ref: ""},
		}},
	}, false)

	if len(set.Sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(set.Sections))
	}
	items := set.Sections[0].Items
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0].Title != "A" || items[1].Title != "B" {
		t.Fatalf("order broken: %q, %q", items[0].Title, items[1].Title)
	}
}

func TestGroupDropsEmptySections(t *testing.T) {
	set := Group([]RawSection{
		{Label: "Top Matches", Entries: []RawEntry{{Title: "Final", Ref: "ref-f"}}},
		{Label: "Sunday"},
		{Label: "Monday", Entries: []RawEntry{{Title: "X", Ref: "ref-x"}}},
	}, true)

	if !set.HasTop {
		t.Fatal("expected top section")
	}
	if len(set.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(set.Sections))
	}
	if set.Sections[1].Label != "Monday" {
		t.Fatalf("second section = %q, want Monday", set.Sections[1].Label)
	}
}

func TestGroupOmitsEmptyTop(t *testing.T) {
	set := Group([]RawSection{
		{Label: "Top Matches", Entries: []RawEntry{{Title: "", Ref: "ref"}}},
		{Label: "Sunday", Entries: []RawEntry{{Title: "X", Ref: "ref-x"}}},
	}, true)

	if set.HasTop {
		t.Fatal("top section should be omitted when empty after filtering")
	}
	if len(set.Sections) != 1 || set.Sections[0].Label != "Sunday" {
		t.Fatalf("unexpected sections: %+v", set.Sections)
	}
	if len(set.Regular()) != 1 {
		t.Fatalf("regular sections = %d, want 1", len(set.Regular()))
	}
}

func TestSingleSection(t *testing.T) {
	set := SingleSection("Popular football matches", []RawEntry{
		{Title: "A", Ref: "football/1"},
		{Title: "B", Ref: "football/2"},
	})
	if set.HasTop {
		t.Fatal("single section sets carry no featured section")
	}
	if len(set.Sections) != 1 || len(set.Sections[0].Items) != 2 {
		t.Fatalf("unexpected set: %+v", set)
	}
}
