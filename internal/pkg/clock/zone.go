package clock

import (
	"sync"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
)

var ErrUnknownTimeZone = errs.New("unknown time zone")

// Date is a civil calendar date, independent of any time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

const dateLayout = "2006-01-02"

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errs.Wrap(err, "invalid date")
	}
	return DateOf(t), nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(dateLayout)
}

// At returns the instant minuteOfDay minutes after local midnight of d.
// 1440 yields midnight of the following day.
func (d Date) At(loc *time.Location, minuteOfDay int) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, minuteOfDay, 0, 0, loc)
}

func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// ZoneProvider resolves IANA names and caches the loaded locations.
type ZoneProvider struct {
	mu    sync.RWMutex
	cache map[string]*time.Location
}

func NewZoneProvider() *ZoneProvider {
	return &ZoneProvider{cache: make(map[string]*time.Location)}
}

func (z *ZoneProvider) Location(name string) (*time.Location, error) {
	z.mu.RLock()
	loc, ok := z.cache[name]
	z.mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "load location %q", name), ErrUnknownTimeZone)
	}

	z.mu.Lock()
	z.cache[name] = loc
	z.mu.Unlock()
	return loc, nil
}

// LocalDate returns the calendar date of instant t in the named zone.
func (z *ZoneProvider) LocalDate(t time.Time, zone string) (Date, error) {
	loc, err := z.Location(zone)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t.In(loc)), nil
}
