package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/symfc/kron"
)

const (
	defaultFormat  = "yaml"
	defaultWorkers = 1
	defaultPairing = "entry"
)

// Config holds defaults that a --config file may override. Flags set on the
// command line win over the file.
type Config struct {
	Workers int    `yaml:"workers"`
	Format  string `yaml:"format"`
	Pairing string `yaml:"pairing"`
	Int32   bool   `yaml:"int32"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Workers: defaultWorkers,
		Format:  defaultFormat,
		Pairing: defaultPairing,
	}
}

// loadConfig reads path on top of DefaultConfig. An empty path returns the
// defaults unchanged.
func loadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, c.validate()
}

// applyFlags copies explicitly set flags into c and validates the result.
func applyFlags(cmd *cobra.Command, c *Config) error {
	flags := cmd.Flags()
	if flags.Changed("workers") {
		c.Workers = workers
	}
	if flags.Changed("format") {
		c.Format = format
	}
	if flags.Changed("pairing") {
		c.Pairing = pairing
	}
	if flags.Changed("int32") {
		c.Int32 = useInt32
	}
	return c.validate()
}

func (c Config) validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	if c.Format != "yaml" && c.Format != "json" {
		return fmt.Errorf("unknown format %q (want yaml or json)", c.Format)
	}
	if _, ok := kron.ParsePairing(c.Pairing); !ok {
		return fmt.Errorf("unknown pairing %q (want entry or factor)", c.Pairing)
	}
	return nil
}

// options converts the config into kernel options.
func (c Config) options() []kron.Option {
	p, _ := kron.ParsePairing(c.Pairing)
	return []kron.Option{kron.WithWorkers(c.Workers), kron.WithPairing(p)}
}
