package reservation

import (
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/venue"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/clock"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"

	"github.com/google/uuid"
)

type Request struct {
	CourtID         uuid.UUID
	PlayerID        uuid.UUID
	Start           time.Time
	DurationMinutes int
	DepositRequired bool
}

type Reservation struct {
	id                 uuid.UUID
	courtID            uuid.UUID
	venueID            uuid.UUID
	playerID           uuid.UUID
	interval           Interval
	quote              Quote
	status             Status
	fundedByCreditID   *uuid.UUID
	creditAppliedCents int64
	createdAt          time.Time
	cancelledAt        *time.Time
}

// NewReservation validates req against the court and venue and returns an
// unsaved reservation. Overlap is not checked here; storage enforces it.
func NewReservation(req Request, v venue.Venue, c venue.Court, loc *time.Location, now time.Time) (*Reservation, error) {
	if !c.Active {
		return nil, errs.ErrCourtInactive
	}

	d := time.Duration(req.DurationMinutes) * time.Minute
	if err := ValidateDuration(d, c.Granularity()); err != nil {
		return nil, err
	}

	iv := NewInterval(req.Start, d)
	if iv.Start.Before(now) {
		return nil, errs.ErrSlotInPast
	}
	if !WithinHours(iv, v.Hours, loc) {
		return nil, errs.ErrOutOfHours
	}

	quote := NewQuote(c.HourlyRateCents, c.DepositCents, d, req.DepositRequired)
	status := StatusNone
	if quote.DepositCents > 0 {
		status = StatusDepositPending
	}

	return &Reservation{
		id:        uuid.New(),
		courtID:   c.ID,
		venueID:   c.VenueID,
		playerID:  req.PlayerID,
		interval:  iv,
		quote:     quote,
		status:    status,
		createdAt: now,
	}, nil
}

func ReconstructReservation(
	id, courtID, venueID, playerID uuid.UUID,
	interval Interval,
	quote Quote,
	status Status,
	fundedByCreditID *uuid.UUID,
	creditAppliedCents int64,
	createdAt time.Time,
	cancelledAt *time.Time,
) *Reservation {
	return &Reservation{
		id:                 id,
		courtID:            courtID,
		venueID:            venueID,
		playerID:           playerID,
		interval:           interval,
		quote:              quote,
		status:             status,
		fundedByCreditID:   fundedByCreditID,
		creditAppliedCents: creditAppliedCents,
		createdAt:          createdAt,
		cancelledAt:        cancelledAt,
	}
}

func ValidateDuration(d, granularity time.Duration) error {
	if d <= 0 || granularity <= 0 || d%granularity != 0 {
		return errs.ErrInvalidDuration
	}
	return nil
}

// WithinHours checks iv against the opening window of its start's local date.
func WithinHours(iv Interval, hours venue.Hours, loc *time.Location) bool {
	opening, closing := hours.Window(clock.DateOf(iv.Start.In(loc)), loc)
	return Interval{Start: opening, End: closing}.Contains(iv)
}

// MarkPaid reports whether the status changed. Paying twice is a no-op.
func (r *Reservation) MarkPaid() (bool, error) {
	switch r.status {
	case StatusCancelled:
		return false, errs.ErrReservationCancelled
	case StatusDepositPending:
		r.status = StatusDepositPaid
		return true, nil
	default:
		return false, nil
	}
}

// Cancel returns the status held before cancelling and whether anything changed.
func (r *Reservation) Cancel(at time.Time) (Status, bool) {
	prev := r.status
	if prev == StatusCancelled {
		return prev, false
	}
	r.status = StatusCancelled
	r.cancelledAt = &at
	return prev, true
}

// ApplyCredit funds the deposit with a credit. A credit that covers the
// deposit settles it.
func (r *Reservation) ApplyCredit(creditID uuid.UUID, amountCents int64) error {
	if r.status != StatusDepositPending || r.fundedByCreditID != nil {
		return errs.ErrCreditMismatch
	}
	r.fundedByCreditID = &creditID
	r.creditAppliedCents = amountCents
	if amountCents >= r.quote.DepositCents {
		r.status = StatusDepositPaid
	}
	return nil
}

// DepositDueCents is the part of the deposit not covered by a credit.
func (r *Reservation) DepositDueCents() int64 {
	return max(r.quote.DepositCents-r.creditAppliedCents, 0)
}

// BalanceDueCents is what remains after the deposit and any credit.
func (r *Reservation) BalanceDueCents() int64 {
	return max(r.quote.TotalCents-max(r.quote.DepositCents, r.creditAppliedCents), 0)
}

func (r *Reservation) IsCancelled() bool { return r.status == StatusCancelled }

// FundedByCredit marks the single-use lineage: cancelling it never yields a credit.
func (r *Reservation) FundedByCredit() bool { return r.fundedByCreditID != nil }

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) CourtID() uuid.UUID           { return r.courtID }
func (r *Reservation) VenueID() uuid.UUID           { return r.venueID }
func (r *Reservation) PlayerID() uuid.UUID          { return r.playerID }
func (r *Reservation) Interval() Interval           { return r.interval }
func (r *Reservation) Start() time.Time             { return r.interval.Start }
func (r *Reservation) Quote() Quote                 { return r.quote }
func (r *Reservation) Status() Status               { return r.status }
func (r *Reservation) FundedByCreditID() *uuid.UUID { return r.fundedByCreditID }
func (r *Reservation) CreditAppliedCents() int64    { return r.creditAppliedCents }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) CancelledAt() *time.Time      { return r.cancelledAt }
