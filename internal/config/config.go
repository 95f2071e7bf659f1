package config

import (
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

// Config carries the console's deployment settings. The defaults reproduce
// the fixed contract the console shipped with (the patient service on
// localhost:8080); configuration only widens that for other deployments.
type Config struct {
	APIBaseURL         string `mapstructure:"API_BASE_URL"`
	HTTPTimeoutSeconds int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	Env                string `mapstructure:"ENV"`
	Port               string `mapstructure:"PORT"`
	StubSeed           bool   `mapstructure:"STUB_SEED"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("API_BASE_URL", "http://localhost:8080")
	v.SetDefault("HTTP_TIMEOUT_SECONDS", 30)
	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("STUB_SEED", false)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("API_BASE_URL")
	v.BindEnv("HTTP_TIMEOUT_SECONDS")
	v.BindEnv("ENV")
	v.BindEnv("PORT")
	v.BindEnv("STUB_SEED")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration can produce working clients.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("API_BASE_URL is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("API_BASE_URL must be an http or https URL, got %q", c.APIBaseURL)
	}
	if c.HTTPTimeoutSeconds <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT_SECONDS must be positive, got %d", c.HTTPTimeoutSeconds)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	return nil
}
