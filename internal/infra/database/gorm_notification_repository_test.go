package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rent_notification_engine/internal/domain/notification"
)

func keyFor(recipient int64, disc string) notification.DedupKey {
	return notification.DedupKey{
		RecipientID:   recipient,
		Type:          notification.TypeOverduePayment,
		Day:           testToday,
		Discriminator: disc,
	}
}

func newKeyed(key notification.DedupKey) *notification.Notification {
	n := &notification.Notification{Title: "Overdue Payment", Message: key.Discriminator + ": overdue"}
	key.Apply(n)
	return n
}

func TestNotificationRepository_DedupKey(t *testing.T) {
	f := newFixture(t)
	key := keyFor(1, "Payment #7 - Jane Roe")

	exists, err := f.notifs.ExistsForKey(f.ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, f.notifs.Create(f.ctx, newKeyed(key)))

	exists, err = f.notifs.ExistsForKey(f.ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	// Another owner, another entity, or another day are all distinct keys.
	for _, other := range []notification.DedupKey{
		keyFor(2, key.Discriminator),
		keyFor(1, "Payment #8 - Jane Roe"),
		{RecipientID: 1, Type: notification.TypeOverduePayment, Day: testToday.AddDate(0, 0, 1), Discriminator: key.Discriminator},
		{RecipientID: 1, Type: notification.TypeLeaseExpiration, Day: testToday, Discriminator: key.Discriminator},
	} {
		exists, err := f.notifs.ExistsForKey(f.ctx, other)
		require.NoError(t, err)
		assert.False(t, exists, "%+v", other)
	}
}

func TestNotificationRepository_UniqueConstraint(t *testing.T) {
	f := newFixture(t)
	key := keyFor(1, "Payment #7 - Jane Roe")

	require.NoError(t, f.notifs.Create(f.ctx, newKeyed(key)))
	err := f.notifs.Create(f.ctx, newKeyed(key))
	assert.ErrorIs(t, err, ErrDuplicateNotification)
}

func TestNotificationRepository_UnkeyedNotificationsAreUnconstrained(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 2; i++ {
		n := &notification.Notification{RecipientID: 1, Type: "welcome", Title: "Hi", Message: "Welcome aboard"}
		require.NoError(t, f.notifs.Create(f.ctx, n))
	}
	list, err := f.notifs.ListByRecipient(f.ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestNotificationRepository_ReadUnread(t *testing.T) {
	f := newFixture(t)
	n := newKeyed(keyFor(1, "Payment #7 - Jane Roe"))
	require.NoError(t, f.notifs.Create(f.ctx, n))

	unread, err := f.notifs.CountUnread(f.ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	require.NoError(t, f.notifs.MarkRead(f.ctx, 1, n.ID))
	first, err := f.notifs.GetByID(f.ctx, n.ID)
	require.NoError(t, err)
	require.True(t, first.IsRead())

	// Reading again keeps the original read time.
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, f.notifs.MarkRead(f.ctx, 1, n.ID))
	second, err := f.notifs.GetByID(f.ctx, n.ID)
	require.NoError(t, err)
	assert.True(t, first.ReadAt.Time.Equal(second.ReadAt.Time))

	require.NoError(t, f.notifs.MarkUnread(f.ctx, 1, n.ID))
	third, err := f.notifs.GetByID(f.ctx, n.ID)
	require.NoError(t, err)
	assert.False(t, third.IsRead())

	// Title and message are untouched by read toggling.
	assert.Equal(t, n.Title, third.Title)
	assert.Equal(t, n.Message, third.Message)
}

func TestNotificationRepository_ScopedToRecipient(t *testing.T) {
	f := newFixture(t)
	n := newKeyed(keyFor(1, "Payment #7 - Jane Roe"))
	require.NoError(t, f.notifs.Create(f.ctx, n))

	assert.ErrorIs(t, f.notifs.MarkRead(f.ctx, 2, n.ID), ErrNotificationNotFound)
	assert.ErrorIs(t, f.notifs.MarkUnread(f.ctx, 2, n.ID), ErrNotificationNotFound)
	assert.ErrorIs(t, f.notifs.Delete(f.ctx, 2, n.ID), ErrNotificationNotFound)

	list, err := f.notifs.ListByRecipient(f.ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, f.notifs.Delete(f.ctx, 1, n.ID))
	_, err = f.notifs.GetByID(f.ctx, n.ID)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestNotificationRepository_Runs(t *testing.T) {
	f := newFixture(t)

	_, err := f.notifs.GetLatestRun(f.ctx)
	assert.ErrorIs(t, err, ErrRunNotFound)

	started := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)
	run := &notification.Run{
		RunID:     "run-1",
		RunDate:   testToday,
		Trigger:   "cli",
		Status:    notification.RunStatusRunning,
		StartedAt: started,
	}
	require.NoError(t, f.notifs.CreateRun(f.ctx, run))

	run.Status = notification.RunStatusPartial
	run.OverduePayments = 3
	run.Error = sql.NullString{String: "lease scan: timeout", Valid: true}
	run.FinishedAt = sql.NullTime{Time: started.Add(2 * time.Second), Valid: true}
	require.NoError(t, f.notifs.FinishRun(f.ctx, run))

	latest, err := f.notifs.GetLatestRun(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, "run-1", latest.RunID)
	assert.Equal(t, notification.RunStatusPartial, latest.Status)
	assert.Equal(t, 3, latest.OverduePayments)
	assert.Equal(t, "lease scan: timeout", latest.Error.String)
	assert.True(t, latest.FinishedAt.Valid)
}
