package notify

import (
	"context"
	"time"

	"github.com/MikeRez0/ypmarket/internal/core/domain"
	"go.uber.org/zap"
)

type notificationPayload struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"created_at"`
}

func toPayload(n *domain.Notification) notificationPayload {
	return notificationPayload{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Link:      n.Link,
		CreatedAt: n.CreatedAt,
	}
}

// LogPublisher only writes the notification to the log. It is used when no
// external sink is configured; the stored record is still the in-app copy.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, n *domain.Notification) error {
	p.logger.Info("notification",
		zap.String("notification", n.ID),
		zap.String("user", n.UserID),
		zap.String("title", n.Title),
		zap.String("message", n.Message))
	return nil
}
