package payment

import (
	"context"
	"time"
)

// Repository defines the payment reads and the silent status write used by reconciliation.
type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id int64) (*Payment, error)
	ListByTenant(ctx context.Context, tenantID int64) ([]*Payment, error)
	// ListUnsettled returns every payment whose stored status is not paid.
	ListUnsettled(ctx context.Context) ([]*Payment, error)
	// ListOverdue returns unpaid payments due strictly before today, with tenant,
	// apartment and both owners resolved.
	ListOverdue(ctx context.Context, today time.Time) ([]*Payment, error)
	// UpdateStoredStatus writes only the status column: no hooks, no updated_at change.
	UpdateStoredStatus(ctx context.Context, id int64, status Status) error
}
