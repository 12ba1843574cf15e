package config

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"github.com/matheuskafuri/newsforge/internal/headline"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const defaultDemoCount = 5

// Words is a set of extra words for one category.
type Words struct {
	Subjects []string `yaml:"subjects"`
	Actions  []string `yaml:"actions"`
	Objects  []string `yaml:"objects"`
}

type Config struct {
	Seed           uint64              `yaml:"seed" env:"NEWSFORGE_SEED"`
	DemoCount      int                 `yaml:"demo_count" env:"NEWSFORGE_DEMO_COUNT"`
	LogLevel       string              `yaml:"log_level" env:"NEWSFORGE_LOG_LEVEL"`
	NoColor        bool                `yaml:"no_color" env:"NEWSFORGE_NO_COLOR"`
	ExtraWords     map[string]Words    `yaml:"extra_words,omitempty"`
	ExtraTemplates map[string][]string `yaml:"extra_templates,omitempty"`
}

// GetDemoCount returns the quick demo size, defaulting to 5.
func (c *Config) GetDemoCount() int {
	if c.DemoCount <= 0 {
		return defaultDemoCount
	}
	return c.DemoCount
}

// Registry builds the headline tables with the configured extensions applied.
func (c *Config) Registry() (*headline.Registry, error) {
	r := headline.DefaultRegistry()

	names := make(map[string]bool)
	for name := range c.ExtraWords {
		names[name] = true
	}
	for name := range c.ExtraTemplates {
		names[name] = true
	}
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	for _, name := range sorted {
		cat, err := headline.ResolveCategory(name)
		if err != nil {
			section := "extra_templates"
			if _, ok := c.ExtraWords[name]; ok {
				section = "extra_words"
			}
			return nil, fmt.Errorf("%s: %w", section, err)
		}
		w := c.ExtraWords[name]
		bank := headline.WordBank{Subjects: w.Subjects, Actions: w.Actions, Objects: w.Objects}
		if err := r.Extend(cat, bank, c.ExtraTemplates[name]); err != nil {
			return nil, fmt.Errorf("extending %s: %w", cat, err)
		}
	}
	return r, r.Validate()
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "newsforge", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path (or the default location) on top of the
// embedded defaults, then applies NEWSFORGE_* environment overrides. A
// missing file is not an error.
func Load(path string) (*Config, error) {
	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

func validate(cfg *Config) error {
	if cfg.DemoCount < 0 {
		return fmt.Errorf("demo_count must not be negative, got %d", cfg.DemoCount)
	}
	if cfg.LogLevel != "" && !validLevels[strings.ToLower(cfg.LogLevel)] {
		return fmt.Errorf("unknown log_level %q (valid: debug, info, warn, error)", cfg.LogLevel)
	}
	if _, err := cfg.Registry(); err != nil {
		return err
	}
	return nil
}
