package note

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock supplies the current instant and the site timezone applied to date
// strings that carry no offset.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type systemClock struct{}

func (systemClock) Now() time.Time           { return time.Now() }
func (systemClock) Location() *time.Location { return time.UTC }

// DateInput is a date value accepted by SetDateCreated and SetDateReminder.
// It is implemented by Unix, ISO8601 and Instant.
type DateInput interface {
	resolve(loc *time.Location) (time.Time, error)
}

// Unix is a date given as seconds since the Unix epoch. Zero means empty.
type Unix int64

func (u Unix) resolve(_ *time.Location) (time.Time, error) {
	if u == 0 {
		return time.Time{}, nil
	}
	return time.Unix(int64(u), 0), nil
}

// ISO8601 is a date given as an ISO-8601 string. Strings without an offset
// are interpreted in the clock's location. A purely numeric string is read
// as a Unix timestamp. An empty string means empty.
type ISO8601 string

var (
	offsetLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999Z0700",
		"2006-01-02 15:04:05.999999999Z07:00",
	}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02T15:04",
		"2006-01-02",
	}
)

func (s ISO8601) resolve(loc *time.Location) (time.Time, error) {
	raw := strings.TrimSpace(string(s))
	if raw == "" {
		return time.Time{}, nil
	}

	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Unix(secs).resolve(loc)
	}

	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

// Instant is a date given as an absolute time. The zero time means empty.
type Instant time.Time

func (i Instant) resolve(_ *time.Location) (time.Time, error) {
	return time.Time(i), nil
}
