package app_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"rent_notification_engine/internal/app"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency string
		fallback string
		want     string
	}{
		{"owner currency", "1200", "EUR", "USD", "€1200.00"},
		{"fallback currency", "1200.5", "", "USD", "$1200.50"},
		{"lowercase code", "99.999", "gbp", "USD", "£100.00"},
		{"unknown code", "10", "XYZ", "USD", "XYZ 10.00"},
		{"no currency at all", "10", "", "", "10.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := app.FormatAmount(decimal.RequireFromString(tt.amount), tt.currency, tt.fallback)
			assert.Equal(t, tt.want, got)
		})
	}
}
