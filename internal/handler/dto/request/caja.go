package request

import (
	"strings"

	"github.com/google/uuid"
)

type RecordMovementRequest struct {
	Kind        string  `json:"kind" binding:"required,oneof=MANUAL_INCOME MANUAL_EXPENSE"`
	AmountCents int64   `json:"amountCents" binding:"required"`
	Description *string `json:"description,omitempty"`
	Method      string  `json:"method" binding:"required,oneof=cash transfer card"`
}

func (r RecordMovementRequest) GetDescription() string {
	if r.Description == nil {
		return ""
	}
	return strings.TrimSpace(*r.Description)
}

type CajaQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

type CreditListQuery struct {
	VenueID string `form:"venue_id" binding:"omitempty,uuid"`
}

// GetVenueID returns nil when no venue filter was given.
func (q CreditListQuery) GetVenueID() *uuid.UUID {
	if q.VenueID == "" {
		return nil
	}
	id, err := uuid.Parse(q.VenueID)
	if err != nil {
		return nil
	}
	return &id
}
