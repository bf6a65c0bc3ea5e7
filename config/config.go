// Package config loads the defaults used by the cfrac command.
//
// A configuration file is TOML or YAML, chosen by extension (.toml, .yaml,
// .yml); any other extension is read as TOML. Missing keys keep the values
// of Default.
//
//	# cfrac.toml
//	max_terms    = 30
//	epsilon      = 1e-12
//	precision    = 10
//	catalog_path = "./data/cfrac.db"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/contfrac/cf"
)

// Format is the configuration file syntax.
type Format int

const (
	// FormatTOML is the default format.
	FormatTOML Format = iota
	// FormatYAML is chosen for .yaml and .yml files.
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ErrInvalidConfig is returned by Validate and wrapped by Load.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the tunables of the command-line driver.
type Config struct {
	// MaxTerms bounds FromFloat64, Sqrt, E and Pi.
	MaxTerms int `toml:"max_terms" yaml:"max_terms"`

	// Epsilon is the tolerance of the compare command.
	Epsilon float64 `toml:"epsilon" yaml:"epsilon"`

	// Precision is the number of decimals printed for values.
	Precision int `toml:"precision" yaml:"precision"`

	// CatalogPath is the SQLite file used by save/show/list.
	CatalogPath string `toml:"catalog_path" yaml:"catalog_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxTerms:    cf.DefaultMaxTerms,
		Epsilon:     cf.DefaultApproxEpsilon,
		Precision:   12,
		CatalogPath: "./data/cfrac.db",
	}
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads path on top of Default and validates the result.
// An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = Decode(content, DetectFormat(path), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Decode parses content in the given format into cfg. Keys absent from
// content leave the corresponding fields untouched.
func Decode(content []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return fmt.Errorf("toml parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %s: %w", format, ErrInvalidConfig)
	}

	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.MaxTerms < 1:
		return fmt.Errorf("max_terms must be ≥ 1, got %d: %w", c.MaxTerms, ErrInvalidConfig)
	case c.Epsilon <= 0:
		return fmt.Errorf("epsilon must be > 0, got %g: %w", c.Epsilon, ErrInvalidConfig)
	case c.Precision < 0 || c.Precision > 17:
		return fmt.Errorf("precision must be in [0, 17], got %d: %w", c.Precision, ErrInvalidConfig)
	case c.CatalogPath == "":
		return fmt.Errorf("catalog_path is empty: %w", ErrInvalidConfig)
	}

	return nil
}
