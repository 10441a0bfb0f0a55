package http

import (
	"net/http"
	"time"
)

// ClientConfig holds HTTP client settings.
type ClientConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

type clientImpl struct {
	config ClientConfig
	client *http.Client
}
