package reservation

import (
	"slices"
	"time"
)

// Interval is the half-open range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start time.Time, d time.Duration) Interval {
	return Interval{Start: start, End: start.Add(d)}
}

func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Overlaps uses half-open semantics: touching boundaries do not overlap.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.Start.Before(o.End) && o.Start.Before(iv.End)
}

func (iv Interval) Contains(o Interval) bool {
	return !o.Start.Before(iv.Start) && !o.End.After(iv.End)
}

// Covers reports whether the union of parts covers target with no gap.
func Covers(target Interval, parts []Interval) bool {
	sorted := slices.Clone(parts)
	slices.SortFunc(sorted, func(a, b Interval) int { return a.Start.Compare(b.Start) })

	reached := target.Start
	for _, p := range sorted {
		if !p.End.After(reached) {
			continue
		}
		if p.Start.After(reached) {
			return false
		}
		reached = p.End
		if !reached.Before(target.End) {
			return true
		}
	}
	return !reached.Before(target.End)
}

// Quote is the price of a booking in cents.
type Quote struct {
	TotalCents   int64
	DepositCents int64
}

// NewQuote prices duration at hourlyRate. A required deposit defaults to the
// full total when the court has none configured and never exceeds the total.
func NewQuote(hourlyRateCents, courtDepositCents int64, d time.Duration, depositRequired bool) Quote {
	total := hourlyRateCents * int64(d/time.Minute) / 60
	if !depositRequired {
		return Quote{TotalCents: total}
	}
	deposit := courtDepositCents
	if deposit <= 0 || deposit > total {
		deposit = total
	}
	return Quote{TotalCents: total, DepositCents: deposit}
}
