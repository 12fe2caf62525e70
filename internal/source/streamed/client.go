// Package streamed wraps the streamed.su JSON API: sport categories,
// popular match listings per selector, and stream links per source.
package streamed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bipuldey19/sportsonline/core/logger"
)

// Selectors accepted by Matches beyond plain sport ids.
const (
	SelectorAll   = "all"
	SelectorToday = "today"
	SelectorLive  = "live"
)

type Sport struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SourceRef struct {
	Source string `json:"source"`
	ID     string `json:"id"`
}

type Match struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Category string      `json:"category"`
	Date     int64       `json:"date"`
	Popular  bool        `json:"popular"`
	Poster   string      `json:"poster"`
	Sources  []SourceRef `json:"sources"`
}

type Stream struct {
	ID       string `json:"id"`
	StreamNo int    `json:"streamNo"`
	Language string `json:"language"`
	HD       bool   `json:"hd"`
	EmbedURL string `json:"embedUrl"`
	Source   string `json:"source"`
}

type Config struct {
	APIURL    string
	UserAgent string
}

type Client struct {
	cfg  Config
	http *http.Client
}

func New(cfg Config, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{cfg: cfg, http: hc}
}

// Sports lists the available categories.
func (c *Client) Sports(ctx context.Context) ([]Sport, error) {
	var sports []Sport
	if err := c.getJSON(ctx, "/api/sports", &sports); err != nil {
		return nil, err
	}
	logger.FetchST.Debug("sports fetched", "sections", len(sports))
	return sports, nil
}

// Matches lists popular matches for a selector: a sport id or one of
// the Selector constants. The "today" selector maps to the API's
// all-today listing.
func (c *Client) Matches(ctx context.Context, selector string) ([]Match, error) {
	path := selector
	if selector == SelectorToday {
		path = "all-today"
	}
	var matches []Match
	if err := c.getJSON(ctx, "/api/matches/"+path+"/popular", &matches); err != nil {
		return nil, err
	}
	logger.FetchST.Debug("matches fetched", "source", selector, "matches", len(matches))
	return matches, nil
}

// PosterURL resolves a relative poster path against the API host.
func (c *Client) PosterURL(path string) string {
	if path == "" {
		return ""
	}
	return c.cfg.APIURL + path
}

// Streams lists the watchable streams one source offers for a match.
func (c *Client) Streams(ctx context.Context, source, id string) ([]Stream, error) {
	var streams []Stream
	if err := c.getJSON(ctx, "/api/stream/"+source+"/"+id, &streams); err != nil {
		return nil, err
	}
	return streams, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.APIURL+path, nil)
	if err != nil {
		return fmt.Errorf("streamed: build request: %w", err)
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("streamed: fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("streamed: fetch %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("streamed: decode %s: %w", path, err)
	}
	return nil
}
