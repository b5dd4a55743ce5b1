package booking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStayPrice(t *testing.T) {
	checkIn := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		price    string
		checkOut time.Time
		want     string
	}{
		{
			name:     "same day checkout bills one night",
			price:    "100.00",
			checkOut: checkIn.Add(3 * time.Hour),
			want:     "100.00",
		},
		{
			name:     "crossing midnight under 24h still bills one night",
			price:    "100.00",
			checkOut: time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC), // 19h elapsed
			want:     "100.00",
		},
		{
			name:     "exactly 24h bills one night",
			price:    "100.00",
			checkOut: checkIn.Add(24 * time.Hour),
			want:     "100.00",
		},
		{
			name:     "25h elapsed still one night",
			price:    "100.00",
			checkOut: checkIn.Add(25 * time.Hour),
			want:     "100.00",
		},
		{
			name:     "48h bills two nights",
			price:    "100.00",
			checkOut: checkIn.Add(48 * time.Hour),
			want:     "200.00",
		},
		{
			name:     "fractional rate stays exact over three nights",
			price:    "100.50",
			checkOut: checkIn.Add(72 * time.Hour),
			want:     "301.50",
		},
		{
			name:     "free room stays free",
			price:    "0.00",
			checkOut: checkIn.Add(48 * time.Hour),
			want:     "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stayPrice(decimal.RequireFromString(tt.price), checkIn, tt.checkOut)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}
