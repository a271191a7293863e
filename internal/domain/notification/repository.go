// internal/domain/notification/repository.go
package notification

import (
	"context"
)

// Repository defines operations for Notification and check-run records.
type Repository interface {
	// Notification methods
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id int64) (*Notification, error)
	// ExistsForKey answers whether a notification with this structured dedup key was already stored.
	ExistsForKey(ctx context.Context, key DedupKey) (bool, error)
	ListByRecipient(ctx context.Context, recipientID int64, limit int) ([]*Notification, error)
	CountUnread(ctx context.Context, recipientID int64) (int64, error)
	MarkRead(ctx context.Context, recipientID, id int64) error
	MarkUnread(ctx context.Context, recipientID, id int64) error
	Delete(ctx context.Context, recipientID, id int64) error

	// Check-run methods
	CreateRun(ctx context.Context, run *Run) error
	FinishRun(ctx context.Context, run *Run) error
	GetLatestRun(ctx context.Context) (*Run, error)
}
