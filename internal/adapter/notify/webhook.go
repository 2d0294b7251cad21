package notify

import (
	"context"
	"fmt"

	"github.com/MikeRez0/ypmarket/internal/adapter/config"
	"github.com/MikeRez0/ypmarket/internal/core/domain"
	"github.com/go-resty/resty/v2"
)

// WebhookPublisher posts each notification as JSON to an HTTP endpoint.
// The notification id is sent as Idempotency-Key because retries may
// deliver the same notification more than once.
type WebhookPublisher struct {
	client *resty.Client
	url    string
}

func NewWebhookPublisher(cfg *config.Webhook) *WebhookPublisher {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &WebhookPublisher{client: client, url: cfg.URL}
}

func (p *WebhookPublisher) Publish(ctx context.Context, n *domain.Notification) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Idempotency-Key", n.ID).
		SetBody(toPayload(n)).
		Post(p.url)
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
