package dateutil

import "time"

// DateCheck is the result of a date-policy check. Message is set only
// when the check failed.
type DateCheck struct {
	IsPast  bool
	Message string
}

// IsPast reports whether t is at or before now. Meetup dates must be
// strictly in the future, so "exactly now" counts as past.
func IsPast(t, now time.Time) DateCheck {
	if !t.After(now) {
		return DateCheck{
			IsPast:  true,
			Message: "meetup date must be in the future",
		}
	}
	return DateCheck{}
}

// DayBounds returns the inclusive start-of-day and end-of-day bounds for
// the calendar day containing d, in d's location.
func DayBounds(d time.Time) (time.Time, time.Time) {
	year, month, day := d.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, d.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}
