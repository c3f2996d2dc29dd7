package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/c4flow/studio-service/internal/notify"
	"github.com/c4flow/studio-service/internal/redisx"
	"github.com/c4flow/studio-service/pkg/db"
)

// Config is the service configuration, sourced from the environment (and a
// local .env file when present).
type Config struct {
	Env         string `envconfig:"APP_ENV" default:"development"`
	HTTPAddr    string `envconfig:"HTTP_ADDR" default:":8080"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"studio-service"`
	SiteName    string `envconfig:"SITE_NAME" default:"C4 Flow"`
	Timezone    string `envconfig:"SITE_TIMEZONE" default:"Africa/Johannesburg"`
	// BookingURL is used by classes and slots without their own link.
	BookingURL string `envconfig:"BOOKING_URL" default:"https://movetoexpresswithc4flow.setmore.com/"`

	Postgres db.PostgresConfig
	Redis    redisx.Config
	Kafka    notify.Config
	Contact  ContactConfig
}

type ContactConfig struct {
	Recipients []string      `envconfig:"CONTACT_EMAIL" default:"info@c4flow.co.za"`
	From       string        `envconfig:"CONTACT_FROM" default:"C4 Flow Website <noreply@c4flow.co.za>"`
	ReplyTo    string        `envconfig:"CONTACT_REPLY_TO"`
	RateLimit  int           `envconfig:"CONTACT_RATE_LIMIT" default:"5"`
	RateWindow time.Duration `envconfig:"CONTACT_RATE_WINDOW" default:"10m"`
}

func Load() (Config, error) {
	// .env is optional outside local runs
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("process env: %w", err)
	}
	return cfg, nil
}

func (c Config) Environment() Environment {
	return ParseEnvironment(c.Env)
}

// Location is the studio's timezone, used to decide what "today" is.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
