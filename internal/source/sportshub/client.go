// Package sportshub scrapes the sportshub schedule site: the landing
// page for the daily match listings and the per-match pages for embed
// server links.
package sportshub

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bipuldey19/sportsonline/core/logger"
	"github.com/bipuldey19/sportsonline/internal/listing"
)

const topSectionLabel = "Today's Top Matches"

// Config carries the scrape endpoints. All fields have working defaults
// in the example config; BaseURL is the only one without a sane zero.
type Config struct {
	BaseURL     string
	EmbedMarker string
	Gateway     string
	UserAgent   string
}

// Server is one watchable stream on a match page.
type Server struct {
	Label string
	URL   string
}

// Detail is the parsed content of a single match page.
type Detail struct {
	Title   string
	Servers []Server
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

// Listings fetches the schedule page and returns its sections in page
// order, featured block first.
func (c *Client) Listings(ctx context.Context) ([]listing.RawSection, error) {
	start := time.Now()
	body, err := c.get(ctx, c.cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	sections, err := parseListings(body)
	if err != nil {
		return nil, fmt.Errorf("sportshub: parse listings: %w", err)
	}

	total := 0
	for _, s := range sections {
		total += len(s.Entries)
	}
	logger.FetchSH.Debug("listings fetched",
		"sections", len(sections),
		"matches", total,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return sections, nil
}

// Detail fetches one match page and extracts its stream servers.
func (c *Client) Detail(ctx context.Context, ref listing.ResourceRef) (Detail, error) {
	body, err := c.get(ctx, string(ref))
	if err != nil {
		return Detail{}, err
	}
	defer body.Close()

	d, err := parseDetail(body, c.cfg.EmbedMarker, c.cfg.Gateway)
	if err != nil {
		return Detail{}, fmt.Errorf("sportshub: parse detail: %w", err)
	}
	logger.FetchSH.Debug("detail fetched", "url", string(ref), "streams", len(d.Servers))
	return d, nil
}

func (c *Client) get(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("sportshub: build request: %w", err)
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sportshub: fetch %s: %w", rawURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("sportshub: fetch %s: unexpected status %d", rawURL, resp.StatusCode)
	}
	return resp.Body, nil
}
