package port

import (
	"context"

	"github.com/MikeRez0/ypmarket/internal/core/domain"
)

//go:generate mockgen -source=notifier.go -destination=mock/notifier.go -package=mock
type Notifier interface {
	Notify(ctx context.Context, n *domain.Notification) error
}

// NotificationPublisher delivers a stored notification outside the service.
type NotificationPublisher interface {
	Publish(ctx context.Context, n *domain.Notification) error
}
