package streamed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSports(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/api/sports": `[{"id":"football","name":"Football"},{"id":"table-tennis","name":"Table Tennis"}]`,
	})
	c := New(Config{APIURL: srv.URL}, srv.Client())

	sports, err := c.Sports(context.Background())
	if err != nil {
		t.Fatalf("Sports: %v", err)
	}
	if len(sports) != 2 || sports[1].ID != "table-tennis" {
		t.Fatalf("sports = %+v", sports)
	}
}

func TestMatchesSelectorPaths(t *testing.T) {
	const matches = `[{"id":"m1","title":"PSG vs Lyon","category":"football","date":1756400400000,` +
		`"popular":true,"sources":[{"source":"alpha","id":"a1"},{"source":"bravo","id":"b1"}]}]`
	srv := newTestServer(t, map[string]string{
		"/api/matches/all/popular":       matches,
		"/api/matches/all-today/popular": matches,
		"/api/matches/live/popular":      matches,
		"/api/matches/football/popular":  matches,
	})
	c := New(Config{APIURL: srv.URL}, srv.Client())

	for _, sel := range []string{SelectorAll, SelectorToday, SelectorLive, "football"} {
		got, err := c.Matches(context.Background(), sel)
		if err != nil {
			t.Fatalf("Matches(%q): %v", sel, err)
		}
		if len(got) != 1 || got[0].ID != "m1" {
			t.Fatalf("Matches(%q) = %+v", sel, got)
		}
		if len(got[0].Sources) != 2 || got[0].Sources[1].Source != "bravo" {
			t.Fatalf("Matches(%q) sources = %+v", sel, got[0].Sources)
		}
	}
}

func TestStreams(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/api/stream/alpha/a1": `[{"id":"a1","streamNo":1,"language":"English","hd":true,` +
			`"embedUrl":"https://embed.example/a1","source":"alpha"}]`,
	})
	c := New(Config{APIURL: srv.URL}, srv.Client())

	streams, err := c.Streams(context.Background(), "alpha", "a1")
	if err != nil {
		t.Fatalf("Streams: %v", err)
	}
	if len(streams) != 1 || !streams[0].HD || streams[0].Language != "English" {
		t.Fatalf("streams = %+v", streams)
	}
}

func TestUpstreamFailure(t *testing.T) {
	srv := newTestServer(t, nil)
	c := New(Config{APIURL: srv.URL}, srv.Client())

	if _, err := c.Sports(context.Background()); err == nil {
		t.Fatal("expected error on 404")
	}
}
