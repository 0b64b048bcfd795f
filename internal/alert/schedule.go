package alert

import (
	"math"
	"time"

	"github.com/notifique/alert/internal"
)

// Stores keep schedules as nanoseconds since the epoch, so an alert can only
// be scheduled within the range of an int64 nanosecond count.
var (
	MinWhen = time.Unix(0, math.MinInt64).UTC()
	MaxWhen = time.Unix(0, math.MaxInt64).UTC()
)

func CheckSchedule(when time.Time) error {
	if when.Before(MinWhen) || when.After(MaxWhen) {
		return internal.InvalidSchedule{When: when}
	}
	return nil
}

// CheckSchedules returns the first out of range schedule in alerts.
func CheckSchedules(alerts []Alert) error {
	for _, a := range alerts {
		if err := CheckSchedule(a.When); err != nil {
			return err
		}
	}
	return nil
}

// ClampSchedule pins t into [MinWhen, MaxWhen] so it can be compared against
// stored schedules without wrapping around.
func ClampSchedule(t time.Time) time.Time {
	switch {
	case t.Before(MinWhen):
		return MinWhen
	case t.After(MaxWhen):
		return MaxWhen
	default:
		return t
	}
}
