package listing

// WindowSize is the fixed number of items per logical page for regular
// (non-featured) sections.
const WindowSize = 30

// Grid column counts for the two page kinds. The featured page renders
// full-width buttons; regular pages use a two-column grid.
const (
	topColumns     = 1
	regularColumns = 2
)

// PageView is one resolved page of a Set, ready for rendering.
type PageView struct {
	SectionLabel string
	Featured     bool
	Items        []Item
	Columns      int
	Page         int
	TotalPages   int
	HasPrev      bool
	HasNext      bool
}

// TotalPages computes the logical page count of a set: one page for the
// featured section when present, plus per-section window counts. Sections
// are never split across a window, so each section rounds up on its own.
func TotalPages(set Set) int {
	total := 0
	if set.HasTop {
		total++
	}
	for _, sec := range set.Regular() {
		total += (len(sec.Items) + WindowSize - 1) / WindowSize
	}
	return total
}

// ResolvePage maps a logical page number onto a slice of the set.
// Page 0 is the whole featured section when present, otherwise the first
// window of the first regular section. Requests outside [0, TotalPages)
// return ErrOutOfRange; callers must not commit the page to the session
// tracker in that case.
func ResolvePage(set Set, page int) (PageView, error) {
	total := TotalPages(set)
	if page < 0 || page >= total {
		return PageView{}, ErrOutOfRange
	}

	view := PageView{
		Page:       page,
		TotalPages: total,
		HasPrev:    page > 0,
		HasNext:    page < total-1,
	}

	if top, ok := set.Top(); ok {
		if page == 0 {
			view.SectionLabel = top.Label
			view.Featured = true
			view.Items = top.Items
			view.Columns = topColumns
			return view, nil
		}
		page--
	}

	for _, sec := range set.Regular() {
		windows := (len(sec.Items) + WindowSize - 1) / WindowSize
		if page >= windows {
			page -= windows
			continue
		}
		start := page * WindowSize
		end := start + WindowSize
		if end > len(sec.Items) {
			end = len(sec.Items)
		}
		view.SectionLabel = sec.Label
		view.Items = sec.Items[start:end]
		view.Columns = regularColumns
		return view, nil
	}

	// Unreachable while TotalPages stays consistent with the walk above.
	return PageView{}, ErrOutOfRange
}
