package ratelimit

import "time"

// untilEndOfDay returns the time remaining until 23:59:59.999 in now's
// location. The window resets at local midnight regardless of when within
// the day it was created.
func untilEndOfDay(now time.Time) time.Duration {
	endOfDay := time.Date(
		now.Year(), now.Month(), now.Day(),
		23, 59, 59, int(999*time.Millisecond),
		now.Location(),
	)

	return endOfDay.Sub(now)
}
