package notify

import (
	"context"
)

const recallBatch = 500

// Recall schedules notifications that are stored but not yet delivered,
// e.g. ones left behind by a restart or a full queue. Notifications that
// used up their attempts are left alone.
func (d *Dispatcher) Recall(ctx context.Context) error {
	list, err := d.repo.ListUndispatchedNotifications(ctx, d.maxAttempts, recallBatch)
	if err != nil {
		return err
	}
	for _, n := range list {
		d.Schedule(n.ID)
	}

	return nil
}
