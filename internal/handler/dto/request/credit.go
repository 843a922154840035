package request

import "github.com/google/uuid"

type ConsumeCreditRequest struct {
	ReservationID uuid.UUID `json:"reservationId" binding:"required"`
}
