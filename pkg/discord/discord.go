package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SendMessage sends a plain text message to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{
		Content:  content,
		Username: d.config.DefaultUsername,
	})
}

// SendEmbed sends an embed message built from options.
func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	embed := Embed{
		Title:       options.Title,
		Description: options.Description,
		Color:       colorFor(options.Type),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Fields:      options.Fields,
	}
	if options.Footer != "" {
		embed.Footer = &EmbedFooter{Text: options.Footer}
	}
	return d.send(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds:   []Embed{embed},
	})
}

// SendError sends an error embed. The error detail is attached as a field.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	opts := MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
	}
	if err != nil {
		opts.Fields = append(opts.Fields, EmbedField{Name: "Error", Value: err.Error()})
	}
	return d.SendEmbed(ctx, opts)
}

// SendSuccess sends a success embed.
func (d *discordImpl) SendSuccess(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{Type: MessageTypeSuccess, Title: title, Description: description})
}

// SendWarning sends a warning embed.
func (d *discordImpl) SendWarning(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{Type: MessageTypeWarning, Title: title, Description: description})
}

// SendInfo sends an info embed.
func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{Type: MessageTypeInfo, Title: title, Description: description})
}

// SendNotification sends an info embed with key/value fields.
func (d *discordImpl) SendNotification(ctx context.Context, title, description string, fields map[string]string) error {
	opts := MessageOptions{
		Type:        MessageTypeInfo,
		Title:       title,
		Description: description,
	}
	for k, v := range fields {
		opts.Fields = append(opts.Fields, EmbedField{Name: k, Value: v, Inline: true})
	}
	return d.SendEmbed(ctx, opts)
}

// GetWebhookURL returns the full webhook URL.
func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf(webhookURLFormat, d.webhook.ID, d.webhook.Token)
}

// Close releases idle connections.
func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		d.l.Errorf(ctx, "discord.send: failed to marshal payload: %v", err)
		return err
	}

	var lastErr error
	for i := 0; i <= d.config.RetryCount; i++ {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, d.GetWebhookURL(), bytes.NewReader(body))
		if reqErr != nil {
			return reqErr
		}
		req.Header.Set("Content-Type", "application/json")

		resp, doErr := d.client.Do(req)
		if doErr != nil {
			lastErr = doErr
		} else {
			resp.Body.Close()
			if resp.StatusCode < 300 {
				return nil
			}
			lastErr = fmt.Errorf("%w: %d", errUnexpectedCode, resp.StatusCode)
			// 4xx will not recover on retry
			if resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
				break
			}
		}
		if i < d.config.RetryCount {
			time.Sleep(d.config.RetryDelay)
		}
	}
	d.l.Errorf(ctx, "discord.send: failed to deliver webhook: %v", lastErr)
	return lastErr
}

func colorFor(t MessageType) int {
	switch t {
	case MessageTypeSuccess:
		return colorSuccess
	case MessageTypeWarning:
		return colorWarning
	case MessageTypeError:
		return colorError
	default:
		return colorInfo
	}
}
