package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fomox/tracescout/internal/core/locator"
)

// Config is the user-facing configuration surface: workspace roots plus the
// search parameters handed to the locators. Values layer as defaults, then
// an optional config file, then TRACESCOUT_* environment variables; command
// flags override all of it.
type Config struct {
	Roots         []string `json:"roots" yaml:"roots"`
	Flavor        string   `json:"flavor" yaml:"flavor"`
	MaxResults    int      `json:"max_results" yaml:"max_results"`
	Match         string   `json:"match" yaml:"match"`
	ExtraPatterns []string `json:"extra_patterns" yaml:"extra_patterns"`

	// Source records which file supplied the file-based layer, for the
	// `config` command output. Empty when no file was found.
	Source string `json:"-" yaml:"-"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Flavor:     locator.FlavorDebug.String(),
		MaxResults: 2000,
		Match:      locator.MatchBoth.String(),
	}
}

// Load builds the effective configuration. configPath, when non-empty, names
// the file explicitly; otherwise $TRACESCOUT_CONFIG is honored and then the
// conventional locations are scanned. A missing file is not an error, a
// malformed one is.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath == "" {
		configPath = os.Getenv("TRACESCOUT_CONFIG")
	}
	if configPath == "" {
		configPath = discoverConfigFile()
	}
	if configPath != "" {
		if err := cfg.merge(configPath); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	applyEnvironment(cfg)

	return cfg, nil
}

// merge layers the contents of a config file over cfg, dispatching on the
// file extension.
func (c *Config) merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	c.Source = path
	return nil
}

// discoverConfigFile scans the conventional locations and returns the first
// existing config file, or empty when there is none.
func discoverConfigFile() string {
	workDir, _ := os.Getwd()
	homeDir, _ := os.UserHomeDir()

	candidates := []string{
		filepath.Join(workDir, "tracescout.yaml"),
		filepath.Join(workDir, "tracescout.yml"),
		filepath.Join(workDir, "tracescout.json"),
		filepath.Join(workDir, ".tracescoutrc"),
		filepath.Join(homeDir, ".config", "tracescout", "config.yaml"),
		filepath.Join(homeDir, ".config", "tracescout", "config.yml"),
		filepath.Join(homeDir, ".config", "tracescout", "config.json"),
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// applyEnvironment layers TRACESCOUT_* variables over cfg.
func applyEnvironment(cfg *Config) {
	if v := os.Getenv("TRACESCOUT_FLAVOR"); v != "" {
		cfg.Flavor = v
	}
	if v := os.Getenv("TRACESCOUT_MATCH"); v != "" {
		cfg.Match = v
	}
	if v := os.Getenv("TRACESCOUT_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxResults = n
		}
	}
	if v := os.Getenv("TRACESCOUT_ROOTS"); v != "" {
		cfg.Roots = filepath.SplitList(v)
	}
}

// Search converts the string-typed surface into the validated parameter set
// the locators consume.
func (c *Config) Search() (locator.Config, error) {
	flavor, err := locator.NewFlavor(c.Flavor)
	if err != nil {
		return locator.Config{}, err
	}
	strategy, err := locator.NewMatchStrategy(c.Match)
	if err != nil {
		return locator.Config{}, err
	}
	if c.MaxResults <= 0 {
		return locator.Config{}, fmt.Errorf("max results must be positive, got %d", c.MaxResults)
	}

	return locator.Config{
		Flavor:        flavor,
		MaxResults:    c.MaxResults,
		Strategy:      strategy,
		ExtraPatterns: append([]string(nil), c.ExtraPatterns...),
	}, nil
}
