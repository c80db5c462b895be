package rate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gigpay/timeclock/internal/domain/model"
)

func TestMinutes(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		d    time.Duration
		want int
	}{
		{"zero", 0, 0},
		{"negative", -time.Minute, 0},
		{"under half minute rounds down", 29 * time.Second, 0},
		{"exact half minute rounds up", 30 * time.Second, 1},
		{"ninety seconds", 90 * time.Second, 2},
		{"whole hour", time.Hour, 60},
		{"ninety minutes", 90 * time.Minute, 90},
		{"just under a minute boundary", 90*time.Minute + 29*time.Second, 90},
		{"half past a minute boundary", 90*time.Minute + 30*time.Second, 91},
		{"sub-second interval", time.Microsecond, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Minutes(start, start.Add(tt.d)))
		})
	}
}

func TestCost(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		hourly  model.Cents
		want    model.Cents
	}{
		{"ninety minutes at 20.00", 90, 2000, 3000},
		{"one hour at 20.00", 60, 2000, 2000},
		{"one minute at 20.00", 1, 2000, 33}, // 33.33 cents rounds to 33
		{"one minute at 0.50 rounds half up", 1, 50, 1},
		{"seven minutes at 12.34", 7, 1234, 144},
		{"zero minutes", 0, 2000, 0},
		{"negative minutes clamp", -5, 2000, 0},
		{"zero rate", 90, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Cost(tt.minutes, tt.hourly))
		})
	}
}
