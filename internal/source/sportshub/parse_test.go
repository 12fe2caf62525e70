package sportshub

import (
	"strings"
	"testing"
)

const listingsPage = `<!DOCTYPE html>
<html><body>
<ul class="list-top-events">
  <li>
    <a href="https://sportshub.example/event/real-madrid barcelona">
      <span class="mr-5">Real Madrid - Barcelona</span>
      <span class="live-label">LIVE</span>
      <span class="d-flex">2 : 1</span>
    </a>
  </li>
  <li>
    <a href="https://sportshub.example/event/lakers-celtics">
      <span class="mr-5">Lakers - Celtics</span>
    </a>
  </li>
  <li><span class="mr-5">No link, dropped</span></li>
</ul>
<ul class="list-events">
  <li class="events-date"><h4> Friday 29 August </h4></li>
  <li>
    <a href="https://sportshub.example/event/arsenal-chelsea">
      <span class="mr-5">Arsenal - Chelsea</span>
    </a>
  </li>
  <li>
    <a href="https://sportshub.example/event/psg-lyon">
      <span class="mr-5">PSG - Lyon</span>
      <span class="live-label">LIVE</span>
      <span class="d-flex">0 : 0</span>
    </a>
  </li>
  <li class="events-date"><h4>Saturday 30 August</h4></li>
  <li>
    <a href="https://sportshub.example/event/inter-milan">
      <span class="mr-5">Inter - Milan</span>
    </a>
  </li>
</ul>
</body></html>`

func TestParseListings(t *testing.T) {
	sections, err := parseListings(strings.NewReader(listingsPage))
	if err != nil {
		t.Fatalf("parseListings: %v", err)
	}
	if len(sections) != 3 {
		t.Fatalf("sections = %d, want 3", len(sections))
	}

	top := sections[0]
	if top.Label != "Today's Top Matches" {
		t.Errorf("top label = %q", top.Label)
	}
	if len(top.Entries) != 2 {
		t.Fatalf("top entries = %d, want 2", len(top.Entries))
	}
	first := top.Entries[0]
	if first.Title != "Real Madrid - Barcelona" {
		t.Errorf("title = %q", first.Title)
	}
	if !first.Live || first.Score != "2 : 1" {
		t.Errorf("live/score = %v %q", first.Live, first.Score)
	}
	if !strings.Contains(string(first.Ref), "real-madrid%20barcelona") {
		t.Errorf("ref not re-encoded: %q", first.Ref)
	}
	if top.Entries[1].Live {
		t.Error("second entry should not be live")
	}

	fri := sections[1]
	if fri.Label != "Friday 29 August" {
		t.Errorf("date label = %q", fri.Label)
	}
	if len(fri.Entries) != 2 {
		t.Fatalf("friday entries = %d, want 2", len(fri.Entries))
	}
	if fri.Entries[1].Title != "PSG - Lyon" || !fri.Entries[1].Live {
		t.Errorf("friday[1] = %+v", fri.Entries[1])
	}

	sat := sections[2]
	if sat.Label != "Saturday 30 August" || len(sat.Entries) != 1 {
		t.Errorf("saturday = %q with %d entries", sat.Label, len(sat.Entries))
	}
}

func TestParseListingsEmptyPage(t *testing.T) {
	sections, err := parseListings(strings.NewReader("<html><body></body></html>"))
	if err != nil {
		t.Fatalf("parseListings: %v", err)
	}
	if len(sections) != 1 || len(sections[0].Entries) != 0 {
		t.Fatalf("sections = %+v, want single empty top", sections)
	}
}

const detailPage = `<!DOCTYPE html>
<html><body>
<div class="d-flex m-0"><span>PSG - Lyon</span></div>
<a href="https://totalsportek.space/embed?force=https%3A%2F%2Fcdn-one.example%2Flive%2Fpsg.m3u8">Server 1</a>
<a href="https://totalsportek.space/embed?force=https%3A%2F%2Fmirror.example%2Fpsg">Server 2</a>
<a href="https://totalsportek.space/embed?other=1">Broken server</a>
<a href="https://elsewhere.example/embed?force=https%3A%2F%2Fignored.example%2Fx">Off-site</a>
</body></html>`

func TestParseDetail(t *testing.T) {
	d, err := parseDetail(strings.NewReader(detailPage),
		"totalsportek.space/embed", "https://srv1.example.org/")
	if err != nil {
		t.Fatalf("parseDetail: %v", err)
	}
	if d.Title != "PSG - Lyon" {
		t.Errorf("title = %q", d.Title)
	}
	if len(d.Servers) != 2 {
		t.Fatalf("servers = %d, want 2", len(d.Servers))
	}
	if d.Servers[0].Label != "🖥 cdn-one.example" {
		t.Errorf("label = %q", d.Servers[0].Label)
	}
	want := "https://srv1.example.org/?stream=https%3A%2F%2Fcdn-one.example%2Flive%2Fpsg.m3u8"
	if d.Servers[0].URL != want {
		t.Errorf("url = %q, want %q", d.Servers[0].URL, want)
	}
	if d.Servers[1].Label != "🖥 mirror.example" {
		t.Errorf("label = %q", d.Servers[1].Label)
	}
}

func TestParseDetailNoServers(t *testing.T) {
	d, err := parseDetail(strings.NewReader("<html><body><p>gone</p></body></html>"),
		"totalsportek.space/embed", "https://srv1.example.org/")
	if err != nil {
		t.Fatalf("parseDetail: %v", err)
	}
	if d.Title != "" || len(d.Servers) != 0 {
		t.Errorf("detail = %+v, want empty", d)
	}
}
