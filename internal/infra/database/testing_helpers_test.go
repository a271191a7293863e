package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rent_notification_engine/internal/domain/payment"
	"rent_notification_engine/internal/domain/property"
	"rent_notification_engine/internal/domain/tenant"
)

var testToday = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() { _ = Close(db) })
	return db
}

type fixture struct {
	ctx        context.Context
	properties *GormPropertyRepository
	tenants    *GormTenantRepository
	payments   *GormPaymentRepository
	notifs     *GormNotificationRepository
}

func newFixture(t *testing.T) *fixture {
	db := setupTestDB(t)
	return &fixture{
		ctx:        context.Background(),
		properties: NewGormPropertyRepository(db, time.Second),
		tenants:    NewGormTenantRepository(db, time.Second),
		payments:   NewGormPaymentRepository(db, time.Second),
		notifs:     NewGormNotificationRepository(db, time.Second),
	}
}

func (f *fixture) owner(t *testing.T, name string) *property.Owner {
	o := &property.Owner{Name: name, Currency: "USD"}
	require.NoError(t, f.properties.CreateOwner(f.ctx, o))
	return o
}

func (f *fixture) apartment(t *testing.T, owner *property.Owner, name string) *property.Apartment {
	a := &property.Apartment{OwnerID: &owner.ID, Name: name, UnitNumber: "1A"}
	require.NoError(t, f.properties.CreateApartment(f.ctx, a))
	return a
}

func (f *fixture) tenant(t *testing.T, owner *property.Owner, apt *property.Apartment, leaseEnd *time.Time, status tenant.LeaseStatus) *tenant.Tenant {
	tn := &tenant.Tenant{OwnerID: &owner.ID, ApartmentID: &apt.ID, FirstName: "Jane", LastName: sql.NullString{String: "Roe", Valid: true}, Status: status}
	if leaseEnd != nil {
		tn.LeaseEndDate = sql.NullTime{Time: *leaseEnd, Valid: true}
	}
	require.NoError(t, f.tenants.Create(f.ctx, tn))
	return tn
}

func (f *fixture) payment(t *testing.T, tn *tenant.Tenant, due time.Time, paidOn *time.Time) *payment.Payment {
	p := &payment.Payment{TenantID: &tn.ID, ApartmentID: tn.ApartmentID, Amount: decimal.RequireFromString("950.50"), DueDate: due}
	if paidOn != nil {
		p.PaymentDate = sql.NullTime{Time: *paidOn, Valid: true}
		p.StoredStatus = payment.StatusPaid
	}
	require.NoError(t, f.payments.Create(f.ctx, p))
	return p
}

func dayOffset(n int) *time.Time {
	d := testToday.AddDate(0, 0, n)
	return &d
}
