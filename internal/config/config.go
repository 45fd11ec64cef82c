// Package config reads the settings of the lisp command.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/xiam/lisp"
)

// DefaultPrompt is shown before each line read by the REPL.
const DefaultPrompt = "lisp> "

// DefaultFile is the config file read when none is given.
const DefaultFile = ".lisp.yml"

// Config holds the settings of a session.
type Config struct {
	Prompt      string   `yaml:"prompt"`
	HistoryFile string   `yaml:"history_file"`
	MaxDepth    int      `yaml:"max_depth"`
	Trace       bool     `yaml:"trace"`
	Preload     []string `yaml:"preload"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Prompt:   DefaultPrompt,
		MaxDepth: lisp.DefaultMaxDepth,
	}
}

// Load reads the config file at path. Settings missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	conf, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return conf, nil
}

// Decode reads YAML settings from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	conf := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(conf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}
	if strings.HasPrefix(c.HistoryFile, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("history_file: %w", err)
		}
		c.HistoryFile = filepath.Join(home, c.HistoryFile[2:])
	}
	return nil
}
