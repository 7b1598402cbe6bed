package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the optional configuration file read from the working
// directory by Run.
const ConfigFile = "aoc.yaml"

// Config holds the driver settings. Every field is optional.
type Config struct {
	// Input is the puzzle input file. Defaults to input.txt.
	Input string `yaml:"input"`
	// LogLevel is a zerolog level name. Defaults to info.
	LogLevel string `yaml:"log_level"`
	// Params holds per-puzzle parameters, decoded on demand by
	// Puzzle.Param.
	Params map[string]yaml.Node `yaml:"params"`
}

// LoadConfig reads the config at path. A missing file yields the default
// config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Input == "" {
		cfg.Input = "input.txt"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// param decodes the named parameter into v. v is left untouched if the
// parameter is not set.
func (c *Config) param(name string, v any) error {
	n, ok := c.Params[name]
	if !ok {
		return nil
	}
	if err := n.Decode(v); err != nil {
		return fmt.Errorf("param %q: %w", name, err)
	}
	return nil
}
