package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// Config holds site-level conversion settings. Flags given explicitly on
// the command line override these values.
type Config struct {
	BaseURL   string `yaml:"baseURL"`   // Prefix for relative links and media (empty = no rewriting)
	Highlight string `yaml:"highlight"` // Chroma style for fenced code (empty = plain <pre><code>)
	Template  string `yaml:"template"`  // Page template file (empty = built-in skeleton)
	OutputDir string `yaml:"outputDir"` // Output directory (empty = next to each input)
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a YAML file. Unknown keys are
// rejected; a typo in a config file should fail loudly, not silently
// fall back to defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return &cfg, nil
}

// mergeFlags applies explicitly-set command-line flags over config file
// values.
func (c *Config) mergeFlags(flags *cliFlags) {
	if flags.set["base-url"] {
		c.BaseURL = flags.baseURL
	}
	if flags.set["highlight"] {
		c.Highlight = flags.highlight
	}
	if flags.set["template"] {
		c.Template = flags.template
	}
	if flags.set["output"] {
		c.OutputDir = flags.outputDir
	}
}
