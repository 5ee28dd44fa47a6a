package config

import (
	"fmt"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port        int    `envconfig:"PORT" default:"8080"`
	DBPath      string `envconfig:"DB_PATH" default:"paytrack.db"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`    // debug|info|warn|error
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// LINE Messaging API credentials. Notification delivery is unavailable
	// (permissions report denied) when either is empty.
	LineChannelSecret string `envconfig:"CHANNEL_SECRET"`
	LineChannelToken  string `envconfig:"CHANNEL_ACCESS_TOKEN"`
	// Fallback push recipient for reminders whose owner has no linked LINE account.
	DefaultRecipient string `envconfig:"DEFAULT_RECIPIENT"`

	// Label for the emulated notification platform. Channel setup only
	// happens on "android".
	PlatformOS string `envconfig:"PLATFORM_OS" default:"android"`

	// Default HH:MM delivery time for reminders that do not set one.
	DefaultNotifyTime string `envconfig:"DEFAULT_NOTIFY_TIME" default:"09:00"`
}

// Load reads environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return cfg, nil
}
