package compose

import (
	"errors"
	"fmt"
	"time"
)

// ErrStaleEvent marks an event date too far in the past to promote
var ErrStaleEvent = errors.New("event date too old")

// DateLabel turns an ISO local date into the phrase templates use.
// Events more than two days gone are rejected.
func DateLabel(isoDate string, now time.Time) (string, error) {
	d, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return "", fmt.Errorf("parse event date %q: %w", isoDate, err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	delta := int(day.Sub(today).Hours() / 24)

	switch {
	case delta < -2:
		return "", ErrStaleEvent
	case delta == -2:
		return "2 days ago", nil
	case delta == -1:
		return "yesterday", nil
	case delta == 0:
		return "today", nil
	case delta == 1:
		return "tomorrow", nil
	case delta <= 6:
		return "this " + day.Weekday().String(), nil
	case delta <= 13:
		return "next " + day.Weekday().String(), nil
	default:
		return fmt.Sprintf("%s %d", day.Month().String(), day.Day()), nil
	}
}
