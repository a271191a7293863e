package tenant

import (
	"context"
	"time"
)

// Repository defines the lease lookups the expiration scan relies on.
type Repository interface {
	Create(ctx context.Context, t *Tenant) error
	GetByID(ctx context.Context, id int64) (*Tenant, error)
	// ListActiveLeasesEndingOn returns active tenants whose lease ends exactly on day,
	// with Owner and Apartment resolved.
	ListActiveLeasesEndingOn(ctx context.Context, day time.Time) ([]*Tenant, error)
}
