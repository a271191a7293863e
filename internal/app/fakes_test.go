package app_test

import (
	"context"
	"errors"
	"time"

	"rent_notification_engine/internal/domain/notification"
	"rent_notification_engine/internal/domain/payment"
	"rent_notification_engine/internal/domain/tenant"
)

var errStoreDown = errors.New("store unavailable")

// brokenPayments fails every overdue listing.
type brokenPayments struct {
	payment.Repository
}

func (b brokenPayments) ListUnsettled(context.Context) ([]*payment.Payment, error) {
	return nil, errStoreDown
}

func (b brokenPayments) ListOverdue(context.Context, time.Time) ([]*payment.Payment, error) {
	return nil, errStoreDown
}

// brokenTenants fails every lease listing.
type brokenTenants struct {
	tenant.Repository
}

func (b brokenTenants) ListActiveLeasesEndingOn(context.Context, time.Time) ([]*tenant.Tenant, error) {
	return nil, errStoreDown
}

// flakyDedup fails dedup lookups but stores normally.
type flakyDedup struct {
	notification.Repository
}

func (f flakyDedup) ExistsForKey(context.Context, notification.DedupKey) (bool, error) {
	return false, errStoreDown
}

// blindDedup never sees existing rows, simulating a concurrent writer that
// inserted between our check and our insert.
type blindDedup struct {
	notification.Repository
}

func (b blindDedup) ExistsForKey(context.Context, notification.DedupKey) (bool, error) {
	return false, nil
}

// failingCreate fails every insert.
type failingCreate struct {
	notification.Repository
}

func (f failingCreate) Create(context.Context, *notification.Notification) error {
	return errStoreDown
}
