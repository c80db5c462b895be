// Package rate implements the billing math for worked time.
//
// The rounding policy is financially observable and therefore fixed:
// durations round to the nearest whole minute and costs round to the nearest
// cent, both half up. Every cost in the system is computed exactly once,
// here, at the moment a clock stops.
package rate

import (
	"time"

	"github.com/gigpay/timeclock/internal/domain/model"
)

// Minutes returns the billable whole minutes between start and end, rounded
// to the nearest minute, half up. A non-positive interval yields zero.
func Minutes(start, end time.Time) int {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	return int((d + 30*time.Second) / time.Minute)
}

// Cost returns durationMinutes/60 * hourly, rounded half up to the cent.
// Zero duration yields zero cost, never an error; negative inputs clamp to
// zero.
func Cost(durationMinutes int, hourly model.Cents) model.Cents {
	if durationMinutes <= 0 || hourly <= 0 {
		return 0
	}
	return model.Cents((int64(durationMinutes)*int64(hourly) + 30) / 60)
}
