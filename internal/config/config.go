// Package config loads tabsheet settings from a YAML file with environment
// overrides. Flags are applied on top by the command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"tabsheet/internal/sheet"
	"tabsheet/internal/tab"
)

// Environment variables read by Load.
const (
	EnvInitialTab    = "TABSHEET_INITIAL_TAB"
	EnvPeekHeight    = "TABSHEET_PEEK_HEIGHT"
	EnvHideThreshold = "TABSHEET_HIDE_THRESHOLD"
	EnvRenderer      = "TABSHEET_RENDERER"
	EnvLogFile       = "TABSHEET_LOG_FILE"
	EnvLogLevel      = "TABSHEET_LOG_LEVEL"
	EnvOTLPEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvServiceName   = "OTEL_SERVICE_NAME"
)

// Renderer values.
const (
	RendererAuto  = "auto"
	RendererRich  = "rich"
	RendererPlain = "plain"
)

// DefaultServiceName is reported to the trace backend when none is configured.
const DefaultServiceName = "tabsheet"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Sheet configures the bottom sheet.
type Sheet struct {
	PeekHeight    int     `yaml:"peek_height"`
	HideThreshold int     `yaml:"hide_threshold"`
	Animate       bool    `yaml:"animate"`
	Frequency     float64 `yaml:"frequency"`
	Damping       float64 `yaml:"damping"`
}

// Log configures the file logger. An empty File disables logging.
type Log struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Trace configures OTLP export. An empty Endpoint disables it.
type Trace struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
	Insecure    bool   `yaml:"insecure"`
}

// Config is the full application configuration.
type Config struct {
	InitialTab string `yaml:"initial_tab"`
	Renderer   string `yaml:"renderer"`
	Sheet      Sheet  `yaml:"sheet"`
	Log        Log    `yaml:"log"`
	Trace      Trace  `yaml:"trace"`
}

// Default returns the built-in configuration.
func Default() *Config {
	sc := sheet.DefaultConfig()
	return &Config{
		InitialTab: string(tab.Default),
		Renderer:   RendererAuto,
		Sheet: Sheet{
			PeekHeight:    sc.PeekHeight,
			HideThreshold: sc.HideThreshold,
			Animate:       sc.Animate,
			Frequency:     sc.Frequency,
			Damping:       sc.Damping,
		},
		Log: Log{Level: "info"},
		Trace: Trace{
			ServiceName: DefaultServiceName,
			Insecure:    true,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/tabsheet/config.yaml (or the OS equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tabsheet", "config.yaml")
}

// Load reads path (or DefaultPath when empty), applies environment overrides
// and validates the result. A missing default file is not an error; a missing
// explicit file is.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvInitialTab); v != "" {
		c.InitialTab = v
	}
	if v := os.Getenv(EnvRenderer); v != "" {
		c.Renderer = v
	}
	if v := os.Getenv(EnvPeekHeight); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvPeekHeight, v, err)
		}
		c.Sheet.PeekHeight = n
	}
	if v := os.Getenv(EnvHideThreshold); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvHideThreshold, v, err)
		}
		c.Sheet.HideThreshold = n
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvOTLPEndpoint); v != "" {
		c.Trace.Endpoint = v
	}
	if v := os.Getenv(EnvServiceName); v != "" {
		c.Trace.ServiceName = v
	}
	return nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if _, err := tab.Parse(c.InitialTab); err != nil {
		return fmt.Errorf("%w: initial_tab: %v", ErrInvalid, err)
	}
	switch strings.ToLower(c.Renderer) {
	case RendererAuto, RendererRich, RendererPlain:
	default:
		return fmt.Errorf("%w: renderer must be auto, rich or plain, got %q", ErrInvalid, c.Renderer)
	}
	if c.Sheet.PeekHeight < 1 {
		return fmt.Errorf("%w: sheet.peek_height must be at least 1, got %d", ErrInvalid, c.Sheet.PeekHeight)
	}
	if c.Sheet.HideThreshold < 0 {
		return fmt.Errorf("%w: sheet.hide_threshold must not be negative, got %d", ErrInvalid, c.Sheet.HideThreshold)
	}
	if c.Sheet.Frequency <= 0 {
		return fmt.Errorf("%w: sheet.frequency must be positive, got %g", ErrInvalid, c.Sheet.Frequency)
	}
	if c.Sheet.Damping < 0 {
		return fmt.Errorf("%w: sheet.damping must not be negative, got %g", ErrInvalid, c.Sheet.Damping)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level must be debug, info, warn or error, got %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// Tab returns the parsed initial tab. Validate guarantees it resolves.
func (c *Config) Tab() tab.Tab {
	t, err := tab.Parse(c.InitialTab)
	if err != nil {
		return tab.Default
	}
	return t
}

// SheetConfig converts the sheet section for sheet.New.
func (c *Config) SheetConfig() sheet.Config {
	return sheet.Config{
		PeekHeight:    c.Sheet.PeekHeight,
		HideThreshold: c.Sheet.HideThreshold,
		Animate:       c.Sheet.Animate,
		Frequency:     c.Sheet.Frequency,
		Damping:       c.Sheet.Damping,
	}
}
