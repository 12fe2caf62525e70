package sportshub

import (
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/bipuldey19/sportsonline/internal/listing"
)

// parseListings extracts the featured block and the per-date blocks from
// the schedule page. The featured block is emitted first so the grouper
// can mark it as the top section.
func parseListings(r io.Reader) ([]listing.RawSection, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	sections := []listing.RawSection{{Label: topSectionLabel}}

	if top := findFirst(doc, func(n *html.Node) bool {
		return n.DataAtom == atom.Ul && hasClass(n, "list-top-events")
	}); top != nil {
		for li := top.FirstChild; li != nil; li = li.NextSibling {
			if li.DataAtom != atom.Li {
				continue
			}
			if e, ok := parseEventItem(li); ok {
				sections[0].Entries = append(sections[0].Entries, e)
			}
		}
	}

	list := findFirst(doc, func(n *html.Node) bool {
		return n.DataAtom == atom.Ul && hasClass(n, "list-events")
	})
	if list == nil {
		return sections, nil
	}

	for li := list.FirstChild; li != nil; li = li.NextSibling {
		if li.DataAtom != atom.Li {
			continue
		}
		if header := findFirst(li, func(n *html.Node) bool {
			return n.DataAtom == atom.H4 && insideClass(n, "events-date")
		}); header != nil {
			sections = append(sections, listing.RawSection{Label: textOf(header)})
			continue
		}
		if len(sections) == 1 {
			// Entries before the first date header have no section.
			continue
		}
		if e, ok := parseEventItem(li); ok {
			last := len(sections) - 1
			sections[last].Entries = append(sections[last].Entries, e)
		}
	}

	return sections, nil
}

// parseEventItem pulls title, link, live flag and score out of one event
// node. Missing titles or links yield ok=false; the grouper drops those.
func parseEventItem(li *html.Node) (listing.RawEntry, bool) {
	var e listing.RawEntry

	if span := findFirst(li, func(n *html.Node) bool {
		return n.DataAtom == atom.Span && hasClass(n, "mr-5")
	}); span != nil {
		e.Title = textOf(span)
	}
	if a := findFirst(li, func(n *html.Node) bool {
		return n.DataAtom == atom.A && attrVal(n, "href") != ""
	}); a != nil {
		e.Ref = normalizeURL(attrVal(a, "href"))
	}
	e.Live = findFirst(li, func(n *html.Node) bool {
		return n.DataAtom == atom.Span && hasClass(n, "live-label")
	}) != nil
	if score := findFirst(li, func(n *html.Node) bool {
		return n.DataAtom == atom.Span && hasClass(n, "d-flex")
	}); score != nil {
		e.Score = textOf(score)
	}

	return e, e.Title != "" && e.Ref != ""
}

// parseDetail extracts the match title and the embed server links from a
// match page. Only anchors whose href contains the embed marker count;
// their "force" parameter holds the real stream URL, which is wrapped in
// the player gateway.
func parseDetail(r io.Reader, marker, gateway string) (Detail, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Detail{}, err
	}

	var d Detail
	if head := findFirst(doc, func(n *html.Node) bool {
		return hasClass(n, "d-flex") && hasClass(n, "m-0")
	}); head != nil {
		if span := findFirst(head, func(n *html.Node) bool {
			return n.DataAtom == atom.Span
		}); span != nil {
			d.Title = textOf(span)
		}
	}

	for _, a := range findAll(doc, func(n *html.Node) bool {
		return n.DataAtom == atom.A && strings.Contains(attrVal(n, "href"), marker)
	}) {
		href, err := url.Parse(normalizeURL(attrVal(a, "href")))
		if err != nil {
			continue
		}
		stream := href.Query().Get("force")
		if stream == "" {
			continue
		}
		target, err := url.Parse(stream)
		if err != nil || target.Hostname() == "" {
			continue
		}
		d.Servers = append(d.Servers, Server{
			Label: "🖥 " + target.Hostname(),
			URL:   gateway + "?stream=" + url.QueryEscape(stream),
		})
	}

	return d, nil
}

// normalizeURL reparses a scraped URL so spaces and stray characters end
// up percent-encoded the same way every fetch cycle.
func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.String()
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, c := range strings.Fields(attrVal(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// insideClass reports whether any ancestor of n carries the class.
func insideClass(n *html.Node, class string) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if hasClass(p, class) {
			return true
		}
	}
	return false
}

func findFirst(root *html.Node, pred func(*html.Node) bool) *html.Node {
	if pred(root) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, pred); found != nil {
			return found
		}
	}
	return nil
}

func findAll(root *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if pred(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
