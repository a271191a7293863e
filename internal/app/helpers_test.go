package app_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"rent_notification_engine/internal/app"
	"rent_notification_engine/internal/domain/notification"
	"rent_notification_engine/internal/domain/payment"
	"rent_notification_engine/internal/domain/property"
	"rent_notification_engine/internal/domain/tenant"
	idb "rent_notification_engine/internal/infra/database"
	"rent_notification_engine/internal/infra/logger"
)

// now is the invocation instant used across tests: mid-morning, March 15th 2026 (UTC).
var now = time.Date(2026, time.March, 15, 9, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return time.Date(2026, time.March, 15+offset, 0, 0, 0, 0, time.UTC)
}

type env struct {
	t          *testing.T
	ctx        context.Context
	properties *idb.GormPropertyRepository
	tenants    *idb.GormTenantRepository
	payments   *idb.GormPaymentRepository
	notifs     *idb.GormNotificationRepository
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db, err := idb.OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	require.NoError(t, idb.Migrate(db))
	t.Cleanup(func() { _ = idb.Close(db) })

	return &env{
		t:          t,
		ctx:        context.Background(),
		properties: idb.NewGormPropertyRepository(db, time.Second),
		tenants:    idb.NewGormTenantRepository(db, time.Second),
		payments:   idb.NewGormPaymentRepository(db, time.Second),
		notifs:     idb.NewGormNotificationRepository(db, time.Second),
	}
}

// service builds a CheckServiceImpl over the env's repositories, with optional overrides.
func (e *env) service(overrides ...func(*serviceDeps)) *app.CheckServiceImpl {
	d := &serviceDeps{payments: e.payments, tenants: e.tenants, notifs: e.notifs}
	for _, o := range overrides {
		o(d)
	}
	return app.NewCheckServiceImpl(d.payments, d.tenants, d.notifs, logger.Discard(), time.UTC, "USD")
}

type serviceDeps struct {
	payments payment.Repository
	tenants  tenant.Repository
	notifs   notification.Repository
}

func (e *env) owner(name, currency string) *property.Owner {
	o := &property.Owner{Name: name, Currency: currency}
	require.NoError(e.t, e.properties.CreateOwner(e.ctx, o))
	return o
}

func (e *env) apartment(owner *property.Owner, name, unit string) *property.Apartment {
	a := &property.Apartment{Name: name, UnitNumber: unit}
	if owner != nil {
		a.OwnerID = &owner.ID
	}
	require.NoError(e.t, e.properties.CreateApartment(e.ctx, a))
	return a
}

func (e *env) tenant(owner *property.Owner, apt *property.Apartment, first, last string) *tenant.Tenant {
	tn := &tenant.Tenant{FirstName: first, Status: tenant.LeaseStatusActive}
	if last != "" {
		tn.LastName = sql.NullString{String: last, Valid: true}
	}
	if owner != nil {
		tn.OwnerID = &owner.ID
	}
	if apt != nil {
		tn.ApartmentID = &apt.ID
	}
	require.NoError(e.t, e.tenants.Create(e.ctx, tn))
	return tn
}

func (e *env) lease(owner *property.Owner, apt *property.Apartment, first string, end time.Time, status tenant.LeaseStatus) *tenant.Tenant {
	tn := &tenant.Tenant{FirstName: first, Status: status, LeaseEndDate: sql.NullTime{Time: end, Valid: true}}
	if owner != nil {
		tn.OwnerID = &owner.ID
	}
	if apt != nil {
		tn.ApartmentID = &apt.ID
	}
	require.NoError(e.t, e.tenants.Create(e.ctx, tn))
	return tn
}

func (e *env) payment(tn *tenant.Tenant, apt *property.Apartment, amount string, due time.Time) *payment.Payment {
	p := &payment.Payment{Amount: decimal.RequireFromString(amount), DueDate: due}
	if tn != nil {
		p.TenantID = &tn.ID
	}
	if apt != nil {
		p.ApartmentID = &apt.ID
	}
	require.NoError(e.t, e.payments.Create(e.ctx, p))
	return p
}

func (e *env) inbox(owner *property.Owner) []*notification.Notification {
	list, err := e.notifs.ListByRecipient(e.ctx, owner.ID, 100)
	require.NoError(e.t, err)
	return list
}
