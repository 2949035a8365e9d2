package cmd

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds everything the client needs from its environment. Values come
// from the process environment, optionally seeded from a .env file.
type Config struct {
	HTTPPort          string        `env:"HTTP_PORT" envDefault:"8080"`
	OrderServiceURL   string        `env:"ORDER_SERVICE_URL,required"`
	SessionFile       string        `env:"SESSION_FILE" envDefault:"shipper_session.json"`
	RefreshSchedule   string        `env:"REFRESH_SCHEDULE" envDefault:"*/30 * * * * *"`
	HTTPClientTimeout time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"10s"`
}

// LoadConfig reads the configuration. A missing .env file is fine; the
// process environment alone may carry everything.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}
