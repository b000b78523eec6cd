// Package config loads and validates the engine's yaml configuration.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
		Env     string `yaml:"env" json:"env"` // development | production
	} `yaml:"app" json:"app"`

	Upstream struct {
		BaseURL        string  `yaml:"base_url" json:"base_url"`
		ClientID       string  `yaml:"client_id" json:"client_id"`
		TimeoutSeconds int     `yaml:"timeout_seconds" json:"timeout_seconds"`
		RatePerSec     float64 `yaml:"rate_per_sec" json:"rate_per_sec"`
		Burst          int     `yaml:"burst" json:"burst"`
	} `yaml:"upstream" json:"upstream"`

	Fetch struct {
		DebounceMS         int `yaml:"debounce_ms" json:"debounce_ms"`
		RefreshSeconds     int `yaml:"refresh_seconds" json:"refresh_seconds"`
		CacheMaxAgeSeconds int `yaml:"cache_max_age_seconds" json:"cache_max_age_seconds"`
		CacheStaleSeconds  int `yaml:"cache_stale_seconds" json:"cache_stale_seconds"`
	} `yaml:"fetch" json:"fetch"`

	Polls struct {
		Enabled bool   `yaml:"enabled" json:"enabled"`
		DSN     string `yaml:"dsn" json:"dsn"`
	} `yaml:"polls" json:"polls"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

func (c Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.Upstream.TimeoutSeconds) * time.Second
}

func (c Config) Debounce() time.Duration {
	return time.Duration(c.Fetch.DebounceMS) * time.Millisecond
}

func (c Config) RefreshInterval() time.Duration {
	return time.Duration(c.Fetch.RefreshSeconds) * time.Second
}

func (c Config) Production() bool { return c.App.Env == "production" }
