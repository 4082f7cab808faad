package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Fetch    FetchConfig    `yaml:"fetch"`
	Discover DiscoverConfig `yaml:"discover"`
	Feedly   FeedlyConfig   `yaml:"feedly"`
}

type FetchConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`
	MaxBodyKB      int    `yaml:"max_body_kb"`
	Retries        int    `yaml:"retries"`
}

type DiscoverConfig struct {
	Spider         int `yaml:"spider"`
	MaxLinks       int `yaml:"max_links"`
	MaxTimeSeconds int `yaml:"max_time_seconds"`
}

type FeedlyConfig struct {
	Endpoint        string `yaml:"endpoint"`
	Count           int    `yaml:"count"`
	ThrottleSeconds int    `yaml:"throttle_seconds"`
}

func Default() *Config {
	return &Config{
		Fetch: FetchConfig{
			TimeoutSeconds: 10,
			UserAgent:      "feedseek/0.1",
			MaxBodyKB:      1024,
			Retries:        5,
		},
		Feedly: FeedlyConfig{
			Endpoint:        "https://cloud.feedly.com/v3/search/feeds",
			Count:           500,
			ThrottleSeconds: 5,
		},
	}
}

func (f FetchConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

func Dir() string {
	if dir := os.Getenv("FEEDSEEK_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".feedseek")
}

func DBPath() string {
	return filepath.Join(Dir(), "feedseek.db")
}

func configPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

func Load() (*Config, error) {
	data, err := os.ReadFile(configPath())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath(), data, 0644)
}
