// Package config loads game settings from defaults, an optional TOML or YAML
// file, command-line flags and key=value overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"hanoi/internal/hanoi"
	"hanoi/internal/theme"
)

const (
	// PromptMinDisks and PromptMaxDisks bound the disk counts offered in the
	// setup dialog and on the HUD.
	PromptMinDisks = 3
	PromptMaxDisks = 7
)

// Config holds every tunable of the game.
type Config struct {
	Disks       int    `toml:"disks" yaml:"disks"`
	Prompt      bool   `toml:"prompt" yaml:"prompt"`
	Scale       int    `toml:"scale" yaml:"scale"`
	TPS         int    `toml:"tps" yaml:"tps"`
	AutoplayTPS int    `toml:"autoplay_tps" yaml:"autoplay_tps"`
	Theme       string `toml:"theme" yaml:"theme"`
	MoveLimit   bool   `toml:"move_limit" yaml:"move_limit"`
	Scramble    bool   `toml:"scramble" yaml:"scramble"`
	Seed        int64  `toml:"seed" yaml:"seed"`
	DBPath      string `toml:"db_path" yaml:"db_path"`
	Verbose     bool   `toml:"verbose" yaml:"verbose"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Disks:       PromptMinDisks,
		Prompt:      true,
		Scale:       1,
		TPS:         60,
		AutoplayTPS: 3,
		Theme:       theme.DefaultName,
		MoveLimit:   true,
		Seed:        42,
		DBPath:      defaultDBPath(),
	}
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "hanoi.db"
	}
	return filepath.Join(dir, "hanoi", "history.db")
}

// Bind attaches the configuration to the provided FlagSet. Flag names match
// the keys accepted by Apply.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Disks, "disks", "n", c.Disks, "number of disks")
	fs.BoolVar(&c.Prompt, "prompt", c.Prompt, "ask for the disk count on start")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.AutoplayTPS, "autoplay-tps", c.AutoplayTPS, "moves per second while autoplaying")
	fs.StringVar(&c.Theme, "theme", c.Theme, "color theme ("+strings.Join(theme.Names(), ", ")+")")
	fs.BoolVar(&c.MoveLimit, "move-limit", c.MoveLimit, "end the game after 2^n-1 moves")
	fs.BoolVar(&c.Scramble, "scramble", c.Scramble, "start from a random legal position")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for scrambled starts")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "game history database path")
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "enable verbose logging")
}

// Load reads a TOML or YAML file on top of the defaults. The format is chosen
// by extension.
func Load(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return c, fmt.Errorf("config %s: unsupported format %q", path, ext)
	}
	return c, nil
}

// Apply sets fields from key/value pairs. Keys use flag spelling; underscores
// are accepted in place of dashes.
func (c *Config) Apply(kv map[string]string) error {
	var errs []error
	for key, value := range kv {
		if err := c.set(key, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Config) set(key, value string) error {
	var err error
	switch normalizeKey(key) {
	case "disks":
		c.Disks, err = strconv.Atoi(value)
	case "prompt":
		c.Prompt, err = strconv.ParseBool(value)
	case "scale":
		c.Scale, err = strconv.Atoi(value)
	case "tps":
		c.TPS, err = strconv.Atoi(value)
	case "autoplay-tps":
		c.AutoplayTPS, err = strconv.Atoi(value)
	case "theme":
		c.Theme = value
	case "move-limit":
		c.MoveLimit, err = strconv.ParseBool(value)
	case "scramble":
		c.Scramble, err = strconv.ParseBool(value)
	case "seed":
		c.Seed, err = strconv.ParseInt(value, 10, 64)
	case "db", "db-path":
		c.DBPath = value
	case "verbose":
		c.Verbose, err = strconv.ParseBool(value)
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	if err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}

func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "_", "-")
}

// Resolve builds the effective configuration: defaults, then the file at path
// (if any), then flags explicitly set on fs, then overrides.
func Resolve(path string, fs *pflag.FlagSet, overrides map[string]string) (Config, error) {
	c := DefaultConfig()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return c, err
		}
		c = loaded
	}
	var errs []error
	if fs != nil {
		fs.Visit(func(f *pflag.Flag) {
			probe := DefaultConfig()
			if probe.set(f.Name, f.Value.String()) != nil {
				return
			}
			if err := c.set(f.Name, f.Value.String()); err != nil {
				errs = append(errs, err)
			}
		})
	}
	if err := c.Apply(overrides); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return c, err
	}
	return c, c.Validate()
}

// Source remembers where a configuration came from so it can be resolved
// again after the file changes.
type Source struct {
	Path      string
	Flags     *pflag.FlagSet
	Overrides map[string]string
}

// Resolve applies Resolve to the remembered inputs.
func (s Source) Resolve() (Config, error) {
	return Resolve(s.Path, s.Flags, s.Overrides)
}

// Validate reports settings the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Disks < hanoi.MinDisks || c.Disks > hanoi.MaxDisks {
		errs = append(errs, fmt.Errorf("disks must be in [%d, %d], got %d", hanoi.MinDisks, hanoi.MaxDisks, c.Disks))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.AutoplayTPS <= 0 {
		errs = append(errs, fmt.Errorf("autoplay-tps must be positive, got %d", c.AutoplayTPS))
	}
	if _, ok := theme.Lookup(c.Theme); !ok {
		errs = append(errs, fmt.Errorf("unknown theme %q (have %s)", c.Theme, strings.Join(theme.Names(), ", ")))
	}
	return errors.Join(errs...)
}
