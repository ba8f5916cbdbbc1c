package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"calendar-planner/internal/calendar"
	"calendar-planner/internal/repository"
)

// Config keeps runtime settings for the bot.
type Config struct {
	TelegramToken       string `env:"TELEGRAM_TOKEN"`
	StorageDriver       string `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	DatabaseURL         string `env:"DATABASE_URL" envDefault:"calendar_planner.db"`
	ReportTime          string `env:"REPORT_TIME" envDefault:"08:00"`
	ReportIntervalHours int    `env:"REPORT_INTERVAL_HOURS" envDefault:"0"`
	OwnerID             int64  `env:"OWNER_ID" envDefault:"0"`
}

// ReportInterval is the optional extra summary cadence; zero disables it.
func (c Config) ReportInterval() time.Duration {
	return time.Duration(c.ReportIntervalHours) * time.Hour
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	cfg.TelegramToken = strings.TrimSpace(cfg.TelegramToken)
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))

	if cfg.TelegramToken == "" {
		return cfg, fmt.Errorf("TELEGRAM_TOKEN is required")
	}
	switch cfg.StorageDriver {
	case repository.DriverSQLite, repository.DriverBolt:
	default:
		return cfg, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", repository.DriverSQLite, repository.DriverBolt, cfg.StorageDriver)
	}
	if cfg.ReportTime != "" {
		if _, err := calendar.ParseClock(cfg.ReportTime); err != nil {
			return cfg, fmt.Errorf("REPORT_TIME: %w", err)
		}
	}
	if cfg.ReportIntervalHours < 0 {
		return cfg, fmt.Errorf("REPORT_INTERVAL_HOURS must not be negative")
	}

	return cfg, nil
}
