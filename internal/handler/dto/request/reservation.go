package request

import (
	"time"

	"github.com/google/uuid"
)

type ReserveRequest struct {
	CourtID uuid.UUID `json:"courtId" binding:"required"`
	// PlayerID lets a venue owner book on behalf of a player.
	PlayerID        *uuid.UUID `json:"playerId,omitempty"`
	Start           time.Time  `json:"start" binding:"required"`
	// DurationMinutes is only required here; its range is checked against the court.
	DurationMinutes *int       `json:"durationMinutes" binding:"required"`
	DepositRequired bool       `json:"depositRequired"`
}

func (r ReserveRequest) GetPlayerID() uuid.UUID {
	if r.PlayerID == nil {
		return uuid.Nil
	}
	return *r.PlayerID
}

func (r ReserveRequest) GetDurationMinutes() int {
	if r.DurationMinutes == nil {
		return 0
	}
	return *r.DurationMinutes
}

type SettleBalanceRequest struct {
	Method string `json:"method" binding:"required,oneof=cash transfer card"`
}

// PaymentCallbackRequest is sent by the payment collector once a deposit
// charge succeeds or is abandoned.
type PaymentCallbackRequest struct {
	ReservationID uuid.UUID  `json:"reservationId" binding:"required"`
	Event         string     `json:"event" binding:"required,oneof=paid cancelled"`
	Method        string     `json:"method" binding:"omitempty,oneof=cash transfer card"`
	OccurredAt    *time.Time `json:"occurredAt,omitempty"`
}

const (
	PaymentEventPaid      = "paid"
	PaymentEventCancelled = "cancelled"
)
