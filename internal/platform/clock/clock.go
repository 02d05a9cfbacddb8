// Package clock provides the site clock: the current time together with the
// timezone applied to note dates that carry no offset.
package clock

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
)

var _ note.Clock = (*Clock)(nil)

// Clock implements note.Clock for a fixed site timezone.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// New returns a clock for the IANA timezone name (for example
// "Europe/Berlin"). An empty name means UTC.
func New(timezone string) (*Clock, error) {
	loc := time.UTC
	if timezone != "" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("loading timezone %q: %w", timezone, err)
		}
		loc = l
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// Now returns the current time in the site timezone.
func (c *Clock) Now() time.Time { return c.now().In(c.loc) }

// Location returns the site timezone.
func (c *Clock) Location() *time.Location { return c.loc }
