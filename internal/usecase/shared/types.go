package shared

import (
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/reservation"

	"github.com/google/uuid"
)

type IdempotencyRecord struct {
	Key           uuid.UUID
	UserID        uuid.UUID
	RequestHash   string
	ReservationID *uuid.UUID
	ExpiresAt     time.Time
}

// RebookingQuery finds reservations that took over a freed interval.
type RebookingQuery struct {
	CourtID       uuid.UUID
	Interval      reservation.Interval
	ExcludeID     uuid.UUID
	CreatedFrom   time.Time
	CreatedBefore time.Time
}

// PendingCursor is the keyset position of the pending-credit sweep.
type PendingCursor struct {
	ResolveAfter time.Time
	ID           uuid.UUID
}

type NewOutboxEvent struct {
	AggregateType string
	AggregateID   uuid.UUID
	EventType     string
	Payload       []byte
	At            time.Time
}

type OutboxEvent struct {
	ID            uuid.UUID
	AggregateType string
	AggregateID   uuid.UUID
	EventType     string
	Payload       []byte
	CreatedAt     time.Time
	Attempts      int
}
