package listing

// Group normalizes raw upstream sections into a Set, preserving upstream
// order. Entries missing a title or ref are skipped; sections left empty
// after filtering are dropped. When hasTop is true the first raw section
// is treated as the featured section, and its absence (or emptiness) is
// reflected in Set.HasTop so downstream never assumes a top page exists.
func Group(raw []RawSection, hasTop bool) Set {
	var set Set
	for i, rs := range raw {
		sec := Section{Label: rs.Label}
		for _, e := range rs.Entries {
			if e.Title == "" || e.Ref == "" {
				continue
			}
			sec.Items = append(sec.Items, Item{
				Ref:   ResourceRef(e.Ref),
				Title: e.Title,
				Live:  e.Live,
				Score: e.Score,
			})
		}
		if len(sec.Items) == 0 {
			continue
		}
		if hasTop && i == 0 {
			set.HasTop = true
		}
		set.Sections = append(set.Sections, sec)
	}
	return set
}

// SingleSection wraps one raw section into a Set without a featured
// section, as produced for API-backed category listings.
func SingleSection(label string, entries []RawEntry) Set {
	return Group([]RawSection{{Label: label, Entries: entries}}, false)
}
