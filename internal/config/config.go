package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the settings roster reads at startup.
type Config struct {
	Endpoint string
	PageSize int
	LogFile  string
}

const (
	defaultConfigPath = "~/.config/roster/config.toml"
	defaultEndpoint   = "https://dummyjson.com/users"
	defaultPageSize   = 6
	defaultLogFile    = "~/.local/state/roster/roster.log"
)

// fileConfig mirrors config.toml. Environment variables are parsed into the
// same struct after the file, so a set variable wins over the file value.
type fileConfig struct {
	Endpoint string `toml:"endpoint"  env:"ROSTER_ENDPOINT"`
	PageSize int    `toml:"page_size" env:"ROSTER_PAGE_SIZE"`
	LogFile  string `toml:"log_file"  env:"ROSTER_LOG_FILE"`
}

// Default returns the built-in configuration with paths expanded.
func Default() Config {
	return Config{
		Endpoint: defaultEndpoint,
		PageSize: defaultPageSize,
		LogFile:  mustExpand(defaultLogFile),
	}
}

// DefaultPath returns the expanded default config file location.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

// Load reads the config file at path (or the default location), applies
// ROSTER_* environment overrides, and fills blanks with defaults. A missing
// file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw fileConfig
	if err := readFile(resolved, &raw); err != nil {
		return Config{}, err
	}
	if err := env.Parse(&raw); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg := Default()
	if v := strings.TrimSpace(raw.Endpoint); v != "" {
		cfg.Endpoint = v
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	return cfg, nil
}

func readFile(path string, raw *fileConfig) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath trims path, expands a leading "~" to the home directory and
// makes the result absolute.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
