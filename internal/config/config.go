// Package config defines the taskboard application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level taskboard configuration.
type Config struct {
	Server   ServerConfig `yaml:"server"`
	DBPath   string       `yaml:"db_path"`
	LogLevel string       `yaml:"log_level"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Addr string `yaml:"addr"` // listen address, e.g., ":8080"
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server:   ServerConfig{Addr: ":8080"},
		DBPath:   defaultDBPath(),
		LogLevel: "info",
	}
}

// Load reads a YAML config file over the defaults, then applies environment
// overrides. An empty path skips the file and uses defaults plus env.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Addr = getEnv("TASKBOARD_ADDR", c.Server.Addr)
	c.DBPath = getEnv("TASKBOARD_DB", c.DBPath)
	c.LogLevel = getEnv("TASKBOARD_LOG_LEVEL", c.LogLevel)
}

// defaultDBPath uses the XDG data directory, falling back to the home
// directory tree.
func defaultDBPath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "taskboard.db"
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "taskboard", "taskboard.db")
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
