package property

import "context"

// Repository defines owner and apartment persistence used by seeding and lookups.
type Repository interface {
	CreateOwner(ctx context.Context, o *Owner) error
	GetOwner(ctx context.Context, id int64) (*Owner, error)
	CreateApartment(ctx context.Context, a *Apartment) error
}
