package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/bipuldey19/sportsonline/core/config"
	coredatabase "github.com/bipuldey19/sportsonline/core/database"
)

// SportshubConfig points at the HTML schedule site.
type SportshubConfig struct {
	URL         string `yaml:"url" envconfig:"SPORTSHUB_URL"`
	EmbedMarker string `yaml:"embed_marker" envconfig:"SPORTSHUB_EMBED_MARKER"`
}

// StreamedConfig points at the JSON match API.
type StreamedConfig struct {
	APIURL string `yaml:"api_url" envconfig:"STREAMED_API_URL"`
}

// SourcesConfig groups upstream settings shared by both match sources.
type SourcesConfig struct {
	Sportshub SportshubConfig `yaml:"sportshub"`
	Streamed  StreamedConfig  `yaml:"streamed"`

	// StreamGateway wraps raw stream URLs into the hosted player page.
	StreamGateway       string `yaml:"stream_gateway" envconfig:"STREAM_GATEWAY"`
	UserAgent           string `yaml:"user_agent" envconfig:"SOURCES_USER_AGENT"`
	Timezone            string `yaml:"timezone" envconfig:"DISPLAY_TIMEZONE"`
	FetchTimeoutSeconds int    `yaml:"fetch_timeout_seconds" envconfig:"SOURCES_FETCH_TIMEOUT_SECONDS"`
}

// Config is the full bot configuration: the reusable core settings plus
// the optional stats database and the upstream sources.
type Config struct {
	Core     coreconfig.Config   `yaml:",inline"`
	Database coredatabase.Config `yaml:"database"`
	Sources  SourcesConfig       `yaml:"sources"`
}

// CoreConfig exposes the embedded core configuration for the runner.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Core
}

// LoadConfig reads the YAML config, applies environment overrides, and
// validates both the core and source sections.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Core); err != nil {
		return nil, err
	}
	if err := normalizeSources(&cfg.Sources); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func normalizeSources(s *SourcesConfig) error {
	if strings.TrimSpace(s.Sportshub.URL) == "" {
		return fmt.Errorf("sources.sportshub.url is required")
	}
	if strings.TrimSpace(s.Streamed.APIURL) == "" {
		return fmt.Errorf("sources.streamed.api_url is required")
	}
	s.Streamed.APIURL = strings.TrimRight(s.Streamed.APIURL, "/")

	if s.Sportshub.EmbedMarker == "" {
		s.Sportshub.EmbedMarker = "totalsportek.space/embed"
	}
	if s.StreamGateway == "" {
		s.StreamGateway = "https://srv1.eu.org/"
	}
	if s.FetchTimeoutSeconds <= 0 {
		s.FetchTimeoutSeconds = 15
	}
	return nil
}
