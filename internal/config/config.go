// Package config loads fraglog settings from defaults, a YAML file, a .env
// file and the environment, in increasing order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default file names, relative to the working directory.
const (
	DefaultFile    = "fraglog.yaml"
	DefaultEnvFile = ".env"
)

// Environment variables read by Load.
const (
	EnvLogDir   = "FRAGLOG_LOGDIR"
	EnvFormat   = "FRAGLOG_FORMAT"
	EnvDriver   = "FRAGLOG_DRIVER"
	EnvDSN      = "FRAGLOG_DSN"
	EnvTimezone = "FRAGLOG_TIMEZONE"
)

// Config holds the resolved settings.
type Config struct {
	LogDir string `yaml:"log_dir"`
	Format string `yaml:"format"`
	// Timezone is the fallback UTC offset in hours for logs that do not
	// declare g_timezone. Nil means no fallback.
	Timezone *int  `yaml:"timezone"`
	Store    Store `yaml:"store"`
}

// Store selects the database used by the store command.
type Store struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format: "jsonl",
		Store:  Store{Driver: "sqlite", DSN: "farcry.db"},
	}
}

type loadConfig struct {
	file         string
	fileExplicit bool
	envFile      string
}

// Option configures Load.
type Option func(*loadConfig)

// WithFile reads the YAML file at path. Unlike the default file, an
// explicit file must exist. An empty path is ignored.
func WithFile(path string) Option {
	return func(c *loadConfig) {
		if path != "" {
			c.file = path
			c.fileExplicit = true
		}
	}
}

// WithEnvFile reads dotenv variables from path instead of ".env".
func WithEnvFile(path string) Option {
	return func(c *loadConfig) {
		c.envFile = path
	}
}

// Load resolves the configuration. Missing default files are skipped.
// Non-empty variables in the process environment take precedence over the
// dotenv file.
func Load(opts ...Option) (Config, error) {
	lc := loadConfig{file: DefaultFile, envFile: DefaultEnvFile}
	for _, opt := range opts {
		if opt != nil {
			opt(&lc)
		}
	}

	cfg := Default()

	if err := readYAML(lc.file, lc.fileExplicit, &cfg); err != nil {
		return Config{}, err
	}

	dotenv, err := readDotenv(lc.envFile)
	if err != nil {
		return Config{}, err
	}
	lookup := func(key string) (string, bool) {
		if v := os.Getenv(key); v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readYAML(path string, required bool, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func readDotenv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	env, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return env, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str(EnvLogDir, &cfg.LogDir)
	str(EnvFormat, &cfg.Format)
	str(EnvDriver, &cfg.Store.Driver)
	str(EnvDSN, &cfg.Store.DSN)

	if v, ok := lookup(EnvTimezone); ok && strings.TrimSpace(v) != "" {
		hours, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: invalid offset %q", EnvTimezone, v)
		}
		cfg.Timezone = &hours
	}
	return nil
}
