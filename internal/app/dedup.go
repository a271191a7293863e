package app

import (
	"context"

	"rent_notification_engine/internal/domain/notification"
)

// DedupOracle answers whether a condition was already raised for an entity on a given day.
// It reads through the store, so notifications created earlier in the same run are visible.
type DedupOracle struct {
	notifRepo notification.Repository
}

func NewDedupOracle(nr notification.Repository) *DedupOracle {
	return &DedupOracle{notifRepo: nr}
}

// AlreadyNotified reports whether a notification with key exists.
func (o *DedupOracle) AlreadyNotified(ctx context.Context, key notification.DedupKey) (bool, error) {
	return o.notifRepo.ExistsForKey(ctx, key)
}
