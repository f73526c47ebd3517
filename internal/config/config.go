package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	BootstrapUsername string `mapstructure:"BOOTSTRAP_USERNAME"`
	BootstrapPassword string `mapstructure:"BOOTSTRAP_PASSWORD"`
	MaxPatientID      int    `mapstructure:"MAX_PATIENT_ID"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BOOTSTRAP_USERNAME", "admin")
	v.SetDefault("BOOTSTRAP_PASSWORD", "admin123")
	v.SetDefault("MAX_PATIENT_ID", 1000000)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("BOOTSTRAP_USERNAME")
	v.BindEnv("BOOTSTRAP_PASSWORD")
	v.BindEnv("MAX_PATIENT_ID")

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

// Validate checks that the configuration is safe to run. The bootstrap
// credentials seed the first admin account, so neither may be empty, and the
// patient ID ceiling bounds every ID prompt.
func (c *Config) Validate() error {
	if c.BootstrapUsername == "" {
		return fmt.Errorf("BOOTSTRAP_USERNAME must not be empty")
	}
	if c.BootstrapPassword == "" {
		return fmt.Errorf("BOOTSTRAP_PASSWORD must not be empty")
	}
	if c.MaxPatientID <= 0 {
		return fmt.Errorf("MAX_PATIENT_ID must be positive, got %d", c.MaxPatientID)
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return fmt.Errorf("LOG_LEVEL must be a zerolog level name, got %q", c.LogLevel)
	}
	return nil
}
