package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates all application configuration. It is loaded once at
// startup and read-only afterwards.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	SerpAPI SerpAPIConfig `yaml:"serpapi"`
	Limits  LimitsConfig  `yaml:"limits"`
}

type ServerConfig struct {
	Name     string `yaml:"name" env:"FLIGHTSWEEP_NAME" env-default:"flightsweep"`
	LogLevel string `yaml:"log_level" env:"FLIGHTSWEEP_LOG_LEVEL" env-default:"info"`
}

type SerpAPIConfig struct {
	APIKey   string `yaml:"api_key" env:"SERPAPI_KEY"`
	BaseURL  string `yaml:"base_url" env:"SERPAPI_BASE_URL" env-default:"https://serpapi.com"`
	Currency string `yaml:"currency" env:"SERPAPI_CURRENCY" env-default:"USD"`
}

// LimitsConfig bounds outbound provider traffic. Range sweeps issue one
// provider call per date pair, sequentially, so these limits cap the load a
// large window can generate.
type LimitsConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" env:"PROVIDER_RPS" env-default:"2"`
	BurstSize         int     `yaml:"burst_size" env:"PROVIDER_BURST" env-default:"4"`
}

// Load reads configuration from config.yaml and environment variables
// Priority: Env Vars > Config File > Defaults
func Load() (*Config, error) {
	var cfg Config

	// Read config.yaml if present, then override with envs.
	err := cleanenv.ReadConfig("config.yaml", &cfg)
	if err != nil {
		// If file doesn't exist, just read env vars
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	}

	return &cfg, nil
}
