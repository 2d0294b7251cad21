package notify

import (
	"context"
	"fmt"

	"github.com/MikeRez0/ypmarket/internal/core/domain"
	"github.com/MikeRez0/ypmarket/internal/core/port"
)

var _ port.Notifier = (*Outbox)(nil)

type scheduler interface {
	Schedule(notificationID string)
}

// Outbox is the notifier used by the escrow engine. It persists the
// notification and leaves delivery to the dispatcher, so a slow or broken
// sink never holds up a release.
type Outbox struct {
	repo      port.Repository
	scheduler scheduler
}

func NewOutbox(repo port.Repository, scheduler scheduler) *Outbox {
	return &Outbox{repo: repo, scheduler: scheduler}
}

func (o *Outbox) Notify(ctx context.Context, n *domain.Notification) error {
	stored, err := o.repo.CreateNotification(ctx, n)
	if err != nil {
		return fmt.Errorf("store notification: %w", err)
	}
	o.scheduler.Schedule(stored.ID)
	return nil
}
