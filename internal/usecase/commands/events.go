package commands

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	AggregateReservation = "reservation"
	AggregateCredit      = "credit"
	AggregateLedger      = "ledger"

	EventReservationCreated   = "reservation.created"
	EventReservationPaid      = "reservation.paid"
	EventReservationSettled   = "reservation.settled"
	EventReservationCancelled = "reservation.cancelled"
	EventCreditIssued         = "credit.issued"
	EventCreditResolved       = "credit.resolved"
	EventCreditConsumed       = "credit.consumed"
	EventCreditExpired        = "credit.expired"
	EventMovementRecorded     = "ledger.movement_recorded"
)

// enqueue writes an outbox row in the caller's transaction.
func enqueue(ctx context.Context, tx shared.Tx, aggregate string, id uuid.UUID, eventType string, payload any, at time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "marshal outbox payload")
	}
	return tx.Outbox().Enqueue(ctx, tx.DB(), shared.NewOutboxEvent{
		AggregateType: aggregate,
		AggregateID:   id,
		EventType:     eventType,
		Payload:       body,
		At:            at,
	})
}

type reservationEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	CourtID       uuid.UUID `json:"court_id"`
	VenueID       uuid.UUID `json:"venue_id"`
	PlayerID      uuid.UUID `json:"player_id"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Status        string    `json:"status"`
	TotalCents    int64     `json:"total_cents"`
	DepositCents  int64     `json:"deposit_cents"`
}

type creditEvent struct {
	CreditID            uuid.UUID  `json:"credit_id"`
	PlayerID            uuid.UUID  `json:"player_id"`
	VenueID             uuid.UUID  `json:"venue_id"`
	SourceReservationID uuid.UUID  `json:"source_reservation_id"`
	Status              string     `json:"status"`
	AmountCents         int64      `json:"amount_cents"`
	ExpiresAt           *time.Time `json:"expires_at,omitempty"`
}

type movementEvent struct {
	MovementID  uuid.UUID `json:"movement_id"`
	VenueID     uuid.UUID `json:"venue_id"`
	Kind        string    `json:"kind"`
	AmountCents int64     `json:"amount_cents"`
	Method      string    `json:"method,omitempty"`
}
