package discord

import "errors"

var (
	errWebhookRequired = errors.New("webhook id and token are required")
	errUnexpectedCode  = errors.New("unexpected status code from discord")
)
