package app

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv    string `envconfig:"APP_ENV" default:"development"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	DataPath string `envconfig:"POS_DATA_PATH" default:"data/pos.json"`
	SeedDemo bool   `envconfig:"POS_SEED_DEMO" default:"true"`

	StoreName    string `envconfig:"POS_STORE_NAME" default:"CircuitPOS Electronics"`
	StorePhone   string `envconfig:"POS_STORE_PHONE" default:""`
	StoreAddress string `envconfig:"POS_STORE_ADDRESS" default:""`
}

// LoadConfig reads configuration from the environment, with an optional
// .env file for local development.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
