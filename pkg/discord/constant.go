package discord

import (
	"net/http"
	"time"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultRetryCount = 2
	defaultRetryDelay = 500 * time.Millisecond
	defaultUsername   = "portal-srv"

	webhookURLFormat = "https://discord.com/api/webhooks/%s/%s"
)

// Colors for embed messages.
const (
	colorInfo    = 0x3498DB
	colorSuccess = 0x2ECC71
	colorWarning = 0xF1C40F
	colorError   = 0xE74C3C
)

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Timeout:         defaultTimeout,
		RetryCount:      defaultRetryCount,
		RetryDelay:      defaultRetryDelay,
		DefaultUsername: defaultUsername,
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
