package cloudpix

import (
	"errors"
	"os"
	"time"
)

// Config carries the account credentials every request is authenticated
// with. Construct it once at startup and pass it into NewClient; nothing
// mutates it afterwards, so concurrent calls are safe.
type Config struct {
	CloudName string
	APIKey    string
	APISecret string

	// Timeout bounds each request/response exchange. Zero selects the
	// default from vars.REQUEST_TIMEOUT.
	Timeout time.Duration
}

// ConfigFromEnv builds a Config from the CLOUDPIX_* environment variables.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		CloudName: os.Getenv("CLOUDPIX_CLOUD_NAME"),
		APIKey:    os.Getenv("CLOUDPIX_API_KEY"),
		APISecret: os.Getenv("CLOUDPIX_API_SECRET"),
	}
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return Config{}, errors.New("missing either CLOUDPIX_CLOUD_NAME, CLOUDPIX_API_KEY or CLOUDPIX_API_SECRET environment variables")
	}
	return cfg, nil
}
