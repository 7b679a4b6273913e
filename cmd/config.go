package cmd

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries everything the service reads from the environment.
// A .env file in the working directory is loaded first when present.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"rental"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	MonitorURL    string        `env:"MONITOR_URL"`
	SMSGatewayURL string        `env:"SMS_GATEWAY_URL"`
	SMSAPIKey     string        `env:"SMS_API_KEY"`
	CampaignURL   string        `env:"CAMPAIGN_URL"`
	ClientTimeout time.Duration `env:"OUTBOUND_CLIENT_TIMEOUT" envDefault:"5s"`

	// Regional employment-support program window. Empty dates disable it.
	ProgramMinAge        int    `env:"PROGRAM_MIN_AGE" envDefault:"19"`
	ProgramMaxAge        int    `env:"PROGRAM_MAX_AGE" envDefault:"34"`
	ProgramPurpose       string `env:"PROGRAM_PURPOSE"`
	ProgramAddressPrefix string `env:"PROGRAM_ADDRESS_PREFIX"`
	ProgramStart         string `env:"PROGRAM_START"`
	ProgramEnd           string `env:"PROGRAM_END"`

	// Per-campaign coupon usage cap; negative disables the cap.
	CouponEventLimit int `env:"COUPON_EVENT_LIMIT" envDefault:"-1"`
}

// LoadConfig reads the optional .env file and parses the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
