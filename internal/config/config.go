// Package config loads aggregator settings from an optional YAML file and
// environment variables, with sensible defaults for the Linz booking
// platform. Precedence is CLI flags over environment over file over
// defaults; the flag layer lives in the cli package.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names recognized by FromEnv.
const (
	envBaseURL    = "VENUE_CALENDAR_BASE_URL"
	envClusterID  = "VENUE_CALENDAR_CLUSTER_ID"
	envUserAgent  = "VENUE_CALENDAR_USER_AGENT"
	envFetchDelay = "VENUE_CALENDAR_FETCH_DELAY"
	envDataDir    = "VENUE_CALENDAR_DATA_DIR"
)

// ErrInvalidConfig is returned when a config file is malformed.
var ErrInvalidConfig = errors.New("config file is invalid")

// Config holds fetch parameters for one aggregation run.
type Config struct {
	BaseURL    string
	ClusterID  int
	UserAgent  string
	FetchDelay time.Duration
	DataDir    string
}

// fileConfig is the YAML shape; the delay is a duration string like
// "500ms" since yaml.v3 has no native time.Duration decoding.
type fileConfig struct {
	BaseURL    string `yaml:"base_url"`
	ClusterID  int    `yaml:"cluster_id"`
	UserAgent  string `yaml:"user_agent"`
	FetchDelay string `yaml:"fetch_delay"`
	DataDir    string `yaml:"data_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:    "https://book.venuzle.at/stadt-linz/venues",
		ClusterID:  6,
		UserAgent:  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		FetchDelay: 500 * time.Millisecond,
		DataDir:    ".",
	}
}

// Load reads a YAML config file over the defaults. An empty path or a
// missing file is not an error; a malformed file is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if file.BaseURL != "" {
		cfg.BaseURL = file.BaseURL
	}
	if file.ClusterID > 0 {
		cfg.ClusterID = file.ClusterID
	}
	if file.UserAgent != "" {
		cfg.UserAgent = file.UserAgent
	}
	if file.DataDir != "" {
		cfg.DataDir = file.DataDir
	}
	if file.FetchDelay != "" {
		d, err := time.ParseDuration(file.FetchDelay)
		if err != nil || d < 0 {
			return cfg, fmt.Errorf("%w: bad fetch_delay %q", ErrInvalidConfig, file.FetchDelay)
		}
		cfg.FetchDelay = d
	}

	return cfg, nil
}

// FromEnv overlays environment variables onto cfg, loading a local
// .env file first when one exists.
func FromEnv(cfg Config) Config {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	if v := os.Getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envClusterID); v != "" {
		if id, err := strconv.Atoi(v); err == nil && id > 0 {
			cfg.ClusterID = id
		}
	}
	if v := os.Getenv(envUserAgent); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv(envFetchDelay); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			cfg.FetchDelay = d
		}
	}
	if v := os.Getenv(envDataDir); v != "" {
		cfg.DataDir = v
	}

	return cfg
}
