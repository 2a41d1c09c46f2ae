package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppPort          = "3000"
	defaultExternalIDPrefix = "checkout-demo"
	defaultCORSOrigin       = "*"
	defaultPushInterval     = 10 * time.Second
)

type Config struct {
	AppPort string
	AppEnv  string

	// Xendit API
	GatewayURL     string
	APIKey         string
	GatewayTimeout time.Duration

	// Invoice
	CallbackURL         string
	ExternalIDPrefix    string
	InvoiceDefaultsFile string

	CORSAllowedOrigin   string
	MetricsPushURL      string
	MetricsPushInterval time.Duration
}

// LoadConfig reads the environment (and .env, if present) once.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:             getEnv("APP_PORT", defaultAppPort),
		AppEnv:              os.Getenv("APP_ENV"),
		GatewayURL:          strings.TrimRight(os.Getenv("API_GATEWAY_URL"), "/"),
		APIKey:              os.Getenv("API_KEY"),
		CallbackURL:         os.Getenv("CALLBACK_URL"),
		ExternalIDPrefix:    getEnv("EXTERNAL_ID_PREFIX", defaultExternalIDPrefix),
		InvoiceDefaultsFile: os.Getenv("INVOICE_DEFAULTS_FILE"),
		CORSAllowedOrigin:   getEnv("CORS_ALLOWED_ORIGIN", defaultCORSOrigin),
		MetricsPushURL:      os.Getenv("METRICS_PUSH_URL"),
	}

	var errs []error
	if cfg.GatewayURL == "" {
		errs = append(errs, errors.New("API_GATEWAY_URL is required"))
	}
	if cfg.APIKey == "" {
		errs = append(errs, errors.New("API_KEY is required"))
	}

	var err error
	if cfg.GatewayTimeout, err = getDuration("GATEWAY_TIMEOUT", 0); err != nil {
		errs = append(errs, err)
	}
	if cfg.MetricsPushInterval, err = getDuration("METRICS_PUSH_INTERVAL", defaultPushInterval); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return cfg, nil
}

// MaskedAPIKey keeps the first four characters of the key for startup logs.
func (c *Config) MaskedAPIKey() string {
	if len(c.APIKey) <= 4 {
		return "****"
	}
	return c.APIKey[:4] + strings.Repeat("*", len(c.APIKey)-4)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
