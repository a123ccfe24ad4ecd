package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when present and no other file is named.
const DefaultFile = "enumgen.yaml"

// Config holds the generator configuration.
type Config struct {
	Version  string `yaml:"version" env:"ENUMGEN_VERSION"`
	Platform string `yaml:"platform" env:"ENUMGEN_PLATFORM"`
	DataDir  string `yaml:"data_dir" env:"ENUMGEN_DATA_DIR"`
	// TemplateDir holds BlockType.java etc. Empty selects the built-in templates.
	TemplateDir string `yaml:"template_dir" env:"ENUMGEN_TEMPLATE_DIR"`
	OutDir      string `yaml:"out_dir" env:"ENUMGEN_OUT_DIR"`

	Fetch       bool   `yaml:"fetch" env:"ENUMGEN_FETCH"`
	FetchBase   string `yaml:"fetch_base" env:"ENUMGEN_FETCH_BASE"`
	FetchSource string `yaml:"fetch_source" env:"ENUMGEN_FETCH_SOURCE"`

	DryRun   bool   `yaml:"dry_run" env:"ENUMGEN_DRY_RUN"`
	Check    bool   `yaml:"check" env:"ENUMGEN_CHECK"`
	LogLevel string `yaml:"log_level" env:"ENUMGEN_LOG_LEVEL"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:  "1.20.4",
		Platform: "pc",
		DataDir:  "./scheme",
		OutDir:   "./generated",
		LogLevel: "info",
	}
}

// LoadFile decodes a YAML file over cfg. Keys absent from the file keep
// their current values; unknown keys are rejected. A missing file yields an
// error matching fs.ErrNotExist.
func LoadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with the ENUMGEN_* variables that are set.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Merge applies file- and env-loaded values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, from *Config, explicitFlags map[string]bool) {
	if !explicitFlags["version"] {
		cfg.Version = from.Version
	}
	if !explicitFlags["platform"] {
		cfg.Platform = from.Platform
	}
	if !explicitFlags["data"] {
		cfg.DataDir = from.DataDir
	}
	if !explicitFlags["templates"] {
		cfg.TemplateDir = from.TemplateDir
	}
	if !explicitFlags["out"] {
		cfg.OutDir = from.OutDir
	}
	if !explicitFlags["fetch"] {
		cfg.Fetch = from.Fetch
	}
	if !explicitFlags["fetch-base"] {
		cfg.FetchBase = from.FetchBase
	}
	if !explicitFlags["fetch-source"] {
		cfg.FetchSource = from.FetchSource
	}
	if !explicitFlags["dry-run"] {
		cfg.DryRun = from.DryRun
	}
	if !explicitFlags["check"] {
		cfg.Check = from.Check
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = from.LogLevel
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Version) == "" {
		return errors.New("config: version is required")
	}
	if strings.TrimSpace(c.Platform) == "" {
		return errors.New("config: platform is required")
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("config: data dir is required")
	}
	if !c.DryRun && strings.TrimSpace(c.OutDir) == "" {
		return errors.New("config: out dir is required")
	}
	if c.DryRun && c.Check {
		return errors.New("config: dry-run and check are mutually exclusive")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel (debug, info, warn or error).
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
