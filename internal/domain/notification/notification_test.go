package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDedupKey_Apply(t *testing.T) {
	key := DedupKey{
		RecipientID:   7,
		Type:          TypeOverduePayment,
		Day:           time.Date(2026, time.March, 15, 23, 59, 0, 0, time.UTC),
		Discriminator: "Payment #3 - John Doe",
	}
	n := &Notification{Title: "Overdue Payment - John Doe"}
	key.Apply(n)

	assert.Equal(t, int64(7), n.RecipientID)
	assert.Equal(t, TypeOverduePayment, n.Type)
	assert.Equal(t, "2026-03-15", n.DedupDay.String)
	assert.Equal(t, "Payment #3 - John Doe", n.DedupKey.String)
	assert.True(t, n.DedupDay.Valid && n.DedupKey.Valid)
	assert.False(t, n.IsRead())
}
