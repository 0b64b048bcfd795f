package alert

import "time"

// IsPending reports whether a is due at now and has not been sent yet.
// Alerts scheduled after now are not pending even if unsent.
func IsPending(a Alert, now time.Time) bool {
	return !a.IsSent && !a.When.After(now)
}

func Pending(alerts []Alert, now time.Time) []Alert {

	pending := make([]Alert, 0, len(alerts))

	for _, a := range alerts {
		if IsPending(a, now) {
			pending = append(pending, a)
		}
	}

	return pending
}

// PendingNow filters alerts against the current time. The result is only
// valid for the instant of the call.
func PendingNow(alerts []Alert) []Alert {
	return Pending(alerts, time.Now())
}
