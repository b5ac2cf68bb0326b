// Package config holds the YAML configuration shared by the tools.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level tool configuration.
type Config struct {
	LogLevel string `yaml:"log_level"`

	// DataDir holds the generated JSON data files.
	DataDir string `yaml:"data_dir"`

	// Overlay engine tuning.
	CacheCapacity int     `yaml:"cache_capacity"`
	FillAlpha     float64 `yaml:"fill_alpha"`
	Silent        bool    `yaml:"silent"`

	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters for the area
// store.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel:      "info",
		DataDir:       "data",
		CacheCapacity: 64,
		FillAlpha:     0.5,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "zonemap",
			Password: "zonemap",
			DBName:   "zonemap",
			SSLMode:  "disable",
		},
	}
}

// Load reads a YAML config file over the defaults. A missing file returns
// the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
