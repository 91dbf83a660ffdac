package http

import (
	"net/http"
	"time"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultRetryWait = 500 * time.Millisecond
)

// ClientConfig holds configuration for the HTTP client. Zero values fall
// back to defaultTimeout and defaultRetryWait, with no retries.
type ClientConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

func (cfg ClientConfig) withDefaults() ClientConfig {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RetryWait <= 0 {
		cfg.RetryWait = defaultRetryWait
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	return cfg
}

// clientImpl implements IClient.
type clientImpl struct {
	client *http.Client
	config ClientConfig
}
