// Package config resolves shopfloor settings from defaults, an optional
// TOML file, an optional .env file and SHOPFLOOR_* environment variables,
// later sources overriding earlier ones.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DefaultWarningDays = 7
	DefaultListenAddr  = ":8080"
)

// Config holds all runtime settings.
type Config struct {
	DBPath             string   `toml:"db_path"`
	LogFile            string   `toml:"log_file"`
	LogStderr          bool     `toml:"log_stderr"`
	DefaultWarningDays int      `toml:"default_warning_days"`
	ListenAddr         string   `toml:"listen_addr"`
	CORSOrigins        []string `toml:"cors_origins"`
	// Actor names the local user in the activity feed.
	Actor string `toml:"actor"`

	// Source is the TOML file that was read, if any.
	Source string `toml:"-"`
}

// Dir returns ~/.shopfloor.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".shopfloor"), nil
}

// Default returns the built-in settings rooted at dir.
func Default(dir string) Config {
	return Config{
		DBPath:             filepath.Join(dir, "shopfloor.db"),
		DefaultWarningDays: DefaultWarningDays,
		ListenAddr:         DefaultListenAddr,
		Actor:              os.Getenv("USER"),
	}
}

// Load resolves the configuration. The TOML file is SHOPFLOOR_CONFIG when
// set, otherwise ~/.shopfloor/config.toml; a missing default file is not
// an error. A .env file in the working directory is applied before the
// environment is read and never overrides variables already set.
func Load() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}
	cfg := Default(dir)

	path, explicit := os.LookupEnv("SHOPFLOOR_CONFIG")
	if !explicit || path == "" {
		path = filepath.Join(dir, "config.toml")
	}
	if err := cfg.loadFile(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || explicit {
			return Config{}, err
		}
	}

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	cfg.LogFile = expandHome(cfg.LogFile)
	cfg.DBPath = expandHome(cfg.DBPath)
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	c.Source = path
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("SHOPFLOOR_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("SHOPFLOOR_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("SHOPFLOOR_LOG_STDERR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: SHOPFLOOR_LOG_STDERR must be a boolean, got %q", v)
		}
		c.LogStderr = b
	}
	if v := os.Getenv("SHOPFLOOR_WARNING_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("config: SHOPFLOOR_WARNING_DAYS must be a whole number >= 0, got %q", v)
		}
		c.DefaultWarningDays = n
	}
	if v := os.Getenv("SHOPFLOOR_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("SHOPFLOOR_CORS_ORIGINS"); v != "" {
		c.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("SHOPFLOOR_USER"); v != "" {
		c.Actor = v
	}
	return nil
}

func (c Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("config: db_path must not be empty")
	}
	if c.DefaultWarningDays < 0 {
		return fmt.Errorf("config: default_warning_days must be >= 0, got %d", c.DefaultWarningDays)
	}
	if c.ListenAddr == "" {
		return errors.New("config: listen_addr must not be empty")
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
