// Package config loads poker-odds defaults from an optional HCL file.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokerodds/internal/evaluator"
)

// DefaultFile is the config path used when none is given
const DefaultFile = "poker-odds.hcl"

// MaxWorkers bounds the enumeration worker count
const MaxWorkers = 256

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the poker-odds configuration file.
//
//	log_level  = "info"
//	workers    = 4
//	categories = ["pair", "flush"]
//	format     = "text"
//	no_color   = false
type Config struct {
	LogLevel   string   `hcl:"log_level,optional"`
	Workers    int      `hcl:"workers,optional"`
	Categories []string `hcl:"categories,optional"`
	Format     string   `hcl:"format,optional"`
	NoColor    bool     `hcl:"no_color,optional"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// LoadConfig loads configuration from an HCL file. A missing file yields the
// defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
	if len(c.Categories) == 0 {
		c.Categories = make([]string, len(evaluator.Categories))
		for i, category := range evaluator.Categories {
			c.Categories[i] = category.Key()
		}
	}
	if c.Format == "" {
		c.Format = FormatText
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Workers < 1 || c.Workers > MaxWorkers {
		return fmt.Errorf("workers must be between 1 and %d, got %d", MaxWorkers, c.Workers)
	}
	if _, err := c.ParsedCategories(); err != nil {
		return err
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid format %q: expected %s or %s", c.Format, FormatText, FormatJSON)
	}
	return nil
}

// Level returns the configured log level
func (c *Config) Level() (log.Level, error) {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		return log.ParseLevel(c.LogLevel)
	default:
		return log.InfoLevel, fmt.Errorf("invalid log level %q: expected debug, info, warn or error", c.LogLevel)
	}
}

// ParsedCategories resolves the configured category slugs
func (c *Config) ParsedCategories() ([]evaluator.Category, error) {
	return evaluator.ParseCategories(c.Categories)
}
