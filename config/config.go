package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPrompt  = "> "
	DefaultHistory = "~/.lox_history.db"
	DefaultSize    = 500
	DefaultFile    = "~/.loxrc.yml"
)

var ErrInvalid = errors.New("invalid configuration")

type History struct {
	File string `yaml:"file"`
	Size int    `yaml:"size"`
}

type Config struct {
	Prompt  string  `yaml:"prompt"`
	History History `yaml:"history"`
}

func Default() Config {
	return Config{
		Prompt: DefaultPrompt,
		History: History{
			File: Expand(DefaultHistory),
			Size: DefaultSize,
		},
	}
}

// Load reads the configuration stored in file. A missing file or an empty
// path gives the default configuration.
func Load(file string) (Config, error) {
	cfg := Default()
	if file == "" {
		return cfg, nil
	}
	r, err := os.Open(Expand(file))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: open %s: %w", file, err)
	}
	defer r.Close()
	return Decode(r)
}

// Decode reads a configuration from r on top of the defaults. Unknown keys
// are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	if cfg.History.Size <= 0 {
		return cfg, fmt.Errorf("history size %d: %w", cfg.History.Size, ErrInvalid)
	}
	if cfg.History.File == "" {
		return cfg, fmt.Errorf("history file: %w", ErrInvalid)
	}
	cfg.History.File = Expand(cfg.History.File)
	return cfg, nil
}

// Expand replaces a leading ~ by the home directory of the current user.
func Expand(file string) string {
	if file != "~" && !strings.HasPrefix(file, "~/") {
		return file
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return file
	}
	return filepath.Join(home, strings.TrimPrefix(file, "~"))
}
