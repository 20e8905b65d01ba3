//go:build unit

package notice_test

import (
	"testing"
	"time"

	"thejulge/internal/domain/notice"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		startsAt time.Time
		closed   bool
		want     notice.Status
	}{
		{
			name:     "future start and open",
			startsAt: now.Add(24 * time.Hour),
			want:     notice.StatusActive,
		},
		{
			name:     "start one second away is still active",
			startsAt: now.Add(time.Second),
			want:     notice.StatusActive,
		},
		{
			name:     "start exactly now is already expired",
			startsAt: now,
			want:     notice.StatusExpired,
		},
		{
			name:     "past start",
			startsAt: now.Add(-time.Hour),
			want:     notice.StatusExpired,
		},
		{
			name:     "closed wins over future start",
			startsAt: now.Add(24 * time.Hour),
			closed:   true,
			want:     notice.StatusClosed,
		},
		{
			name:     "closed wins over past start",
			startsAt: now.Add(-24 * time.Hour),
			closed:   true,
			want:     notice.StatusClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, notice.DeriveStatus(tt.startsAt, tt.closed, now))
		})
	}
}

func TestStatusIsInactive(t *testing.T) {
	assert.False(t, notice.StatusActive.IsInactive())
	assert.True(t, notice.StatusClosed.IsInactive())
	assert.True(t, notice.StatusExpired.IsInactive())
}

func TestPayPremiumPercent(t *testing.T) {
	tests := []struct {
		name      string
		hourlyPay int
		baseline  int
		want      int
	}{
		{name: "fifty percent above baseline", hourlyPay: 15000, baseline: 10000, want: 50},
		{name: "rounds down", hourlyPay: 10999, baseline: 10000, want: 9},
		{name: "equal to baseline", hourlyPay: 10000, baseline: 10000, want: 0},
		{name: "below baseline", hourlyPay: 9000, baseline: 10000, want: 0},
		{name: "unknown baseline", hourlyPay: 10000, baseline: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := notice.Notice{
				HourlyPay: tt.hourlyPay,
				Shop:      notice.Shop{OriginalHourlyPay: tt.baseline},
			}
			assert.Equal(t, tt.want, n.PayPremiumPercent())
		})
	}
}
