package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/precinct-results/middleware"
	"github.com/danielhkuo/precinct-results/results"
)

// Header policy variants
const (
	VariantNamed    = middleware.VariantNamed
	VariantWildcard = middleware.VariantWildcard
)

type Config struct {
	Port       int
	DataPath   string
	SourceURL  string
	ConfigFile string
	Title      string
	Debug      bool
	Headers    HeaderConfig
	Schema     results.Schema
}

type HeaderConfig struct {
	Variant        string
	EmbedOrigin    string
	FrameAncestors []string
}

// Policy converts the header settings for the middleware
func (h HeaderConfig) Policy() middleware.Policy {
	return middleware.Policy{
		Variant:        h.Variant,
		EmbedOrigin:    h.EmbedOrigin,
		FrameAncestors: h.FrameAncestors,
	}
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() Config {
	return Config{
		Port:     3318,
		DataPath: "data/election_data.csv",
		Title:    "Los Angeles County 2024 presidential election results by neighborhood",
		Headers: HeaderConfig{
			Variant:     VariantNamed,
			EmbedOrigin: "https://mappingtheborder.com",
		},
		Schema: results.DefaultSchema(),
	}
}

// ParseFlags builds the configuration.
// Precedence: defaults < config file < environment (.env included) < flags.
func ParseFlags(args []string) (Config, error) {
	var (
		port           int
		dataPath       string
		sourceURL      string
		configFile     string
		title          string
		debug          bool
		variant        string
		embedOrigin    string
		frameAncestors string
		envFile        string
	)

	flags := flag.NewFlagSet("precinct-results", flag.ContinueOnError)

	flags.IntVar(&port, "p", 0, "Server port")
	flags.StringVar(&dataPath, "data", "", "Path of the election CSV served at /election_data.csv")
	flags.StringVar(&sourceURL, "source", "", "URL pages load the CSV from (default: read -data directly)")
	flags.StringVar(&configFile, "c", "", "TOML config file")
	flags.StringVar(&title, "title", "", "Page title")
	flags.BoolVar(&debug, "debug", false, "Debug logging and strict state checks")
	flags.StringVar(&variant, "headers", "", "Header policy variant (named or wildcard)")
	flags.StringVar(&embedOrigin, "origin", "", "Origin allowed to embed the page")
	flags.StringVar(&frameAncestors, "frame-ancestors", "", "Space separated frame-ancestors sources")
	flags.StringVar(&envFile, "env", ".env", "dotenv file to load (missing file is ignored)")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := DefaultConfig()

	// Config file
	if configFile == "" {
		configFile = os.Getenv("CONFIG_FILE")
	}
	if configFile != "" {
		if err := LoadFile(configFile, &cfg); err != nil {
			return Config{}, err
		}
		cfg.ConfigFile = configFile
	}

	// Environment
	if portStr := os.Getenv("PORT"); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, errors.New("invalid PORT env variable")
		}
		cfg.Port = p
	}
	setFromEnv(&cfg.DataPath, "DATA_PATH")
	setFromEnv(&cfg.SourceURL, "SOURCE_URL")
	setFromEnv(&cfg.Title, "TITLE")
	setFromEnv(&cfg.Headers.Variant, "HEADER_VARIANT")
	setFromEnv(&cfg.Headers.EmbedOrigin, "EMBED_ORIGIN")
	if v := os.Getenv("FRAME_ANCESTORS"); v != "" {
		cfg.Headers.FrameAncestors = strings.Fields(v)
	}
	if v := os.Getenv("DEBUG"); v != "" {
		d, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, errors.New("invalid DEBUG env variable")
		}
		cfg.Debug = d
	}

	// Flags that were given on the command line win
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			cfg.Port = port
		case "data":
			cfg.DataPath = dataPath
		case "source":
			cfg.SourceURL = sourceURL
		case "title":
			cfg.Title = title
		case "debug":
			cfg.Debug = debug
		case "headers":
			cfg.Headers.Variant = variant
		case "origin":
			cfg.Headers.EmbedOrigin = embedOrigin
		case "frame-ancestors":
			cfg.Headers.FrameAncestors = strings.Fields(frameAncestors)
		}
	})

	if len(cfg.Headers.FrameAncestors) == 0 {
		cfg.Headers.FrameAncestors = []string{"'self'", cfg.Headers.EmbedOrigin, "*.squarespace.com"}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail at request time
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.DataPath == "" && c.SourceURL == "" {
		return errors.New("data path or source URL required (use -data or DATA_PATH env)")
	}
	switch c.Headers.Variant {
	case VariantNamed, VariantWildcard:
	default:
		return fmt.Errorf("unknown header variant %q (want %s or %s)", c.Headers.Variant, VariantNamed, VariantWildcard)
	}
	if c.Headers.EmbedOrigin == "" || c.Headers.EmbedOrigin == "*" {
		return errors.New("embed origin must name a single origin")
	}
	if err := c.Schema.Validate(); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}
	return nil
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
