package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const webhookBaseURL = "https://discord.com/api/webhooks"

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("%s/%s/%s", webhookBaseURL, d.webhook.ID, d.webhook.Token)
}

// SendMessage posts a plain text message to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.post(ctx, webhookPayload{
		Username: d.config.DefaultUsername,
		Content:  content,
	})
}

// SendError posts an error embed. The wrapped error is included as a field.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	embed := Embed{
		Title:       title,
		Description: description,
		Color:       colorError,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if err != nil {
		embed.Fields = append(embed.Fields, EmbedField{Name: "error", Value: err.Error()})
	}
	return d.post(ctx, webhookPayload{Username: d.config.DefaultUsername, Embeds: []Embed{embed}})
}

// SendWarning posts a warning embed.
func (d *discordImpl) SendWarning(ctx context.Context, title, description string) error {
	return d.sendEmbed(ctx, title, description, colorWarning)
}

// SendInfo posts an informational embed.
func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.sendEmbed(ctx, title, description, colorInfo)
}

// Close releases client resources.
func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) sendEmbed(ctx context.Context, title, description string, color int) error {
	return d.post(ctx, webhookPayload{
		Username: d.config.DefaultUsername,
		Embeds: []Embed{{
			Title:       title,
			Description: description,
			Color:       color,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

func (d *discordImpl) post(ctx context.Context, payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("discord: webhook returned status %d", resp.StatusCode)
	}
	return nil
}
