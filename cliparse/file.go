package cliparse

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/danielhkuo/precinct-results/results"
)

// fileConfig mirrors the TOML layout. Zero values leave the current setting alone.
type fileConfig struct {
	Title  string `toml:"title"`
	Server struct {
		Port  int   `toml:"port"`
		Debug *bool `toml:"debug"`
	} `toml:"server"`
	Data struct {
		Path      string `toml:"path"`
		SourceURL string `toml:"source_url"`
	} `toml:"data"`
	Headers struct {
		Variant        string   `toml:"variant"`
		EmbedOrigin    string   `toml:"embed_origin"`
		FrameAncestors []string `toml:"frame_ancestors"`
	} `toml:"headers"`
	Schema struct {
		LocationColumn string              `toml:"location_column"`
		TypeColumn     string              `toml:"type_column"`
		Candidates     []results.Candidate `toml:"candidates"`
	} `toml:"schema"`
}

// LoadFile applies a TOML config file on top of cfg
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.Title != "" {
		cfg.Title = fc.Title
	}
	if fc.Server.Port != 0 {
		cfg.Port = fc.Server.Port
	}
	if fc.Server.Debug != nil {
		cfg.Debug = *fc.Server.Debug
	}
	if fc.Data.Path != "" {
		cfg.DataPath = fc.Data.Path
	}
	if fc.Data.SourceURL != "" {
		cfg.SourceURL = fc.Data.SourceURL
	}
	if fc.Headers.Variant != "" {
		cfg.Headers.Variant = fc.Headers.Variant
	}
	if fc.Headers.EmbedOrigin != "" {
		cfg.Headers.EmbedOrigin = fc.Headers.EmbedOrigin
	}
	if len(fc.Headers.FrameAncestors) > 0 {
		cfg.Headers.FrameAncestors = fc.Headers.FrameAncestors
	}
	if fc.Schema.LocationColumn != "" {
		cfg.Schema.LocationColumn = fc.Schema.LocationColumn
	}
	if fc.Schema.TypeColumn != "" {
		cfg.Schema.TypeColumn = fc.Schema.TypeColumn
	}
	switch len(fc.Schema.Candidates) {
	case 0:
	case 2:
		cfg.Schema.Candidates = [2]results.Candidate(fc.Schema.Candidates)
	default:
		return fmt.Errorf("config file %s: exactly 2 candidates required, got %d", path, len(fc.Schema.Candidates))
	}

	return nil
}
