package credit

import (
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"

	"github.com/google/uuid"
)

// Cancellation describes a cancelled, deposit-paid reservation.
type Cancellation struct {
	ReservationID  uuid.UUID
	PlayerID       uuid.UUID
	VenueID        uuid.UUID
	Start          time.Time
	AmountCents    int64
	FundedByCredit bool
	CancelledAt    time.Time
}

type Credit struct {
	id                  uuid.UUID
	playerID            uuid.UUID
	venueID             uuid.UUID
	sourceReservationID uuid.UUID
	amountCents         int64
	status              Status
	issuedAt            time.Time
	expiresAt           *time.Time
	resolveAfter        *time.Time
	resolvedAt          *time.Time
	singleUse           bool
	consumedBy          *uuid.UUID
}

// Issue decides the credit owed for a cancellation.
//
// A reservation paid with a credit never yields a usable one again. Cancelling
// before start-Notice yields an available credit right away. Later
// cancellations wait for the slot's fate, decided by Resolve.
func (p Policy) Issue(c Cancellation) *Credit {
	cr := &Credit{
		id:                  uuid.New(),
		playerID:            c.PlayerID,
		venueID:             c.VenueID,
		sourceReservationID: c.ReservationID,
		amountCents:         c.AmountCents,
		issuedAt:            c.CancelledAt,
	}

	cutoff := c.Start.Add(-p.Notice)
	switch {
	case c.FundedByCredit:
		cr.status = StatusForfeited
		cr.singleUse = true
		cr.resolvedAt = &c.CancelledAt
	case c.CancelledAt.Before(cutoff):
		cr.status = StatusAvailable
		cr.expiresAt = ptrTime(c.CancelledAt.Add(p.Validity))
		cr.resolvedAt = &c.CancelledAt
	default:
		cr.status = StatusPendingResolution
		cr.resolveAfter = ptrTime(c.Start)
	}
	return cr
}

// Resolve settles a pending credit. rebooked tells whether the freed slot was
// taken again before the original start. It reports whether the credit changed.
func (p Policy) Resolve(cr *Credit, now time.Time, rebooked bool) bool {
	if cr.status != StatusPendingResolution {
		return false
	}
	switch {
	case rebooked:
		cr.status = StatusAvailable
		cr.expiresAt = ptrTime(now.Add(p.Validity))
	case cr.resolveAfter == nil || !now.Before(*cr.resolveAfter):
		cr.status = StatusForfeited
	default:
		return false
	}
	cr.resolvedAt = &now
	return true
}

func ReconstructCredit(
	id, playerID, venueID, sourceReservationID uuid.UUID,
	amountCents int64,
	status Status,
	issuedAt time.Time,
	expiresAt, resolveAfter, resolvedAt *time.Time,
	singleUse bool,
	consumedBy *uuid.UUID,
) *Credit {
	return &Credit{
		id:                  id,
		playerID:            playerID,
		venueID:             venueID,
		sourceReservationID: sourceReservationID,
		amountCents:         amountCents,
		status:              status,
		issuedAt:            issuedAt,
		expiresAt:           expiresAt,
		resolveAfter:        resolveAfter,
		resolvedAt:          resolvedAt,
		singleUse:           singleUse,
		consumedBy:          consumedBy,
	}
}

// IsDue reports whether an available credit has reached its expiry.
func (c *Credit) IsDue(now time.Time) bool {
	return c.status == StatusAvailable && c.expiresAt != nil && !now.Before(*c.expiresAt)
}

// ExpireIfDue flips an available credit past its expiry to EXPIRED.
func (c *Credit) ExpireIfDue(now time.Time) bool {
	if !c.IsDue(now) {
		return false
	}
	c.status = StatusExpired
	return true
}

// Consume applies the credit to a reservation. Callers must run ExpireIfDue
// first and persist its result even when Consume fails.
func (c *Credit) Consume(reservationID uuid.UUID) error {
	if c.status != StatusAvailable {
		return errs.ErrCreditNotAvailable
	}
	c.status = StatusConsumed
	c.singleUse = true
	c.consumedBy = &reservationID
	return nil
}

// CanFund reports whether the credit belongs to the same player and venue.
func (c *Credit) CanFund(playerID, venueID uuid.UUID) bool {
	return c.playerID == playerID && c.venueID == venueID
}

func (c *Credit) ID() uuid.UUID                  { return c.id }
func (c *Credit) PlayerID() uuid.UUID            { return c.playerID }
func (c *Credit) VenueID() uuid.UUID             { return c.venueID }
func (c *Credit) SourceReservationID() uuid.UUID { return c.sourceReservationID }
func (c *Credit) AmountCents() int64             { return c.amountCents }
func (c *Credit) Status() Status                 { return c.status }
func (c *Credit) IssuedAt() time.Time            { return c.issuedAt }
func (c *Credit) ExpiresAt() *time.Time          { return c.expiresAt }
func (c *Credit) ResolveAfter() *time.Time       { return c.resolveAfter }
func (c *Credit) ResolvedAt() *time.Time         { return c.resolvedAt }
func (c *Credit) SingleUse() bool                { return c.singleUse }
func (c *Credit) ConsumedBy() *uuid.UUID         { return c.consumedBy }

func ptrTime(t time.Time) *time.Time { return &t }
