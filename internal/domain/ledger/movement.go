package ledger

import (
	"strings"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxDescriptionLength = 500

// MaxAmountCents bounds a single movement so negating and summing stay in int64.
const MaxAmountCents int64 = 1_000_000_000_000

type Movement struct {
	id            uuid.UUID
	venueID       uuid.UUID
	kind          Kind
	amountCents   int64
	reservationID *uuid.UUID
	creditID      *uuid.UUID
	occurredAt    time.Time
	method        Method
	stage         Stage
	description   string
}

// NewManualMovement records cash entered by hand. The sign follows the kind,
// never the input: expenses are stored negative.
func NewManualMovement(venueID uuid.UUID, kind Kind, amountCents int64, description string, method Method, now time.Time) (*Movement, error) {
	if !kind.IsManual() {
		return nil, errs.Wrapf(errs.ErrInvalidMovement, "kind %q cannot be recorded manually", kind)
	}
	if amountCents == 0 {
		return nil, errs.Wrap(errs.ErrInvalidMovement, "amount must not be zero")
	}
	if amountCents > MaxAmountCents || amountCents < -MaxAmountCents {
		return nil, errs.Wrapf(errs.ErrInvalidMovement, "amount exceeds %d cents", MaxAmountCents)
	}
	if !method.IsValid() {
		return nil, errs.Wrapf(errs.ErrInvalidMovement, "unknown method %q", method)
	}
	description = strings.TrimSpace(description)
	if len(description) > MaxDescriptionLength {
		return nil, errs.Wrap(errs.ErrInvalidMovement, "description too long")
	}

	amount := abs(amountCents)
	if kind == KindManualExpense {
		amount = -amount
	}

	return &Movement{
		id:          uuid.New(),
		venueID:     venueID,
		kind:        kind,
		amountCents: amount,
		occurredAt:  now,
		method:      method,
		description: description,
	}, nil
}

func NewPaymentIncome(venueID, reservationID uuid.UUID, amountCents int64, method Method, stage Stage, now time.Time) (*Movement, error) {
	if amountCents <= 0 {
		return nil, errs.Wrap(errs.ErrInvalidMovement, "payment must be positive")
	}
	if amountCents > MaxAmountCents {
		return nil, errs.Wrapf(errs.ErrInvalidMovement, "payment exceeds %d cents", MaxAmountCents)
	}
	if !method.IsValid() {
		return nil, errs.Wrapf(errs.ErrInvalidMovement, "unknown method %q", method)
	}
	return &Movement{
		id:            uuid.New(),
		venueID:       venueID,
		kind:          KindPaymentIncome,
		amountCents:   amountCents,
		reservationID: &reservationID,
		occurredAt:    now,
		method:        method,
		stage:         stage,
		description:   "reservation " + strings.ToLower(string(stage)),
	}, nil
}

// NewCreditAdjustment moves a credit's value in or out of the register.
// Issuing a credit is negative (money owed back); consuming or expiring it is positive.
func NewCreditAdjustment(venueID, creditID uuid.UUID, reservationID *uuid.UUID, amountCents int64, description string, now time.Time) *Movement {
	return &Movement{
		id:            uuid.New(),
		venueID:       venueID,
		kind:          KindCreditAdjustment,
		amountCents:   amountCents,
		reservationID: reservationID,
		creditID:      &creditID,
		occurredAt:    now,
		description:   description,
	}
}

func ReconstructMovement(
	id, venueID uuid.UUID,
	kind Kind,
	amountCents int64,
	reservationID, creditID *uuid.UUID,
	occurredAt time.Time,
	method Method,
	stage Stage,
	description string,
) *Movement {
	return &Movement{
		id:            id,
		venueID:       venueID,
		kind:          kind,
		amountCents:   amountCents,
		reservationID: reservationID,
		creditID:      creditID,
		occurredAt:    occurredAt,
		method:        method,
		stage:         stage,
		description:   description,
	}
}

func (m *Movement) ID() uuid.UUID             { return m.id }
func (m *Movement) VenueID() uuid.UUID        { return m.venueID }
func (m *Movement) Kind() Kind                { return m.kind }
func (m *Movement) AmountCents() int64        { return m.amountCents }
func (m *Movement) ReservationID() *uuid.UUID { return m.reservationID }
func (m *Movement) CreditID() *uuid.UUID      { return m.creditID }
func (m *Movement) OccurredAt() time.Time     { return m.occurredAt }
func (m *Movement) Method() Method            { return m.method }
func (m *Movement) Stage() Stage              { return m.stage }
func (m *Movement) Description() string       { return m.description }

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
