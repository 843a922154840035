package venue

import (
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/pkg/clock"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"

	"github.com/google/uuid"
)

// EndOfDay is the closing sentinel for venues that close at midnight.
const EndOfDay = 24 * 60

var ErrInvalidHours = errs.New("opening time must be before closing time")

// Hours is a daily opening window in minutes after local midnight.
type Hours struct {
	opens  int
	closes int
}

func NewHours(opens, closes int) (Hours, error) {
	if opens < 0 || closes > EndOfDay || opens >= closes {
		return Hours{}, ErrInvalidHours
	}
	return Hours{opens: opens, closes: closes}, nil
}

func (h Hours) Opens() int  { return h.opens }
func (h Hours) Closes() int { return h.closes }

// Window returns the opening interval of date in loc.
func (h Hours) Window(date clock.Date, loc *time.Location) (time.Time, time.Time) {
	return date.At(loc, h.opens), date.At(loc, h.closes)
}

// Venue is read from the directory; the booking core never mutates it.
type Venue struct {
	ID       uuid.UUID
	OwnerID  uuid.UUID
	Name     string
	Hours    Hours
	TimeZone string
}

type Court struct {
	ID                 uuid.UUID
	VenueID            uuid.UUID
	Name               string
	SlotMinutes        int
	GranularityMinutes int
	HourlyRateCents    int64
	DepositCents       int64
	Active             bool
}

func (c Court) SlotDuration() time.Duration {
	return time.Duration(c.SlotMinutes) * time.Minute
}

// Granularity falls back to the slot length when unset.
func (c Court) Granularity() time.Duration {
	if c.GranularityMinutes <= 0 {
		return c.SlotDuration()
	}
	return time.Duration(c.GranularityMinutes) * time.Minute
}
