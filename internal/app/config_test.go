package app

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `telegram:
  token: "123:abc"
  run_mode: longpoll
sources:
  sportshub:
    url: "https://schedule.example/"
  streamed:
    api_url: "https://api.example/"
`

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Core.Telegram.Token != "123:abc" {
		t.Errorf("token = %q", cfg.Core.Telegram.Token)
	}
	if cfg.Database.Enabled() {
		t.Error("database should be disabled with empty host/name")
	}
	if cfg.Sources.Sportshub.EmbedMarker != "totalsportek.space/embed" {
		t.Errorf("embed marker default = %q", cfg.Sources.Sportshub.EmbedMarker)
	}
	if cfg.Sources.StreamGateway != "https://srv1.eu.org/" {
		t.Errorf("gateway default = %q", cfg.Sources.StreamGateway)
	}
	if cfg.Sources.FetchTimeoutSeconds != 15 {
		t.Errorf("fetch timeout default = %d", cfg.Sources.FetchTimeoutSeconds)
	}
	if cfg.Sources.Streamed.APIURL != "https://api.example" {
		t.Errorf("api url should lose trailing slash, got %q", cfg.Sources.Streamed.APIURL)
	}
}

func TestNormalizeSourcesRequiredFields(t *testing.T) {
	cases := []struct {
		name string
		cfg  SourcesConfig
	}{
		{"missing sportshub url", SourcesConfig{Streamed: StreamedConfig{APIURL: "https://api.example"}}},
		{"missing streamed api url", SourcesConfig{Sportshub: SportshubConfig{URL: "https://schedule.example/"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := normalizeSources(&tc.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}
