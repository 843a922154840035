package response

import (
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/reservation"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID                 uuid.UUID  `json:"id"`
	CourtID            uuid.UUID  `json:"courtId"`
	VenueID            uuid.UUID  `json:"venueId"`
	PlayerID           uuid.UUID  `json:"playerId"`
	Start              time.Time  `json:"start"`
	End                time.Time  `json:"end"`
	DurationMinutes    int        `json:"durationMinutes"`
	Status             string     `json:"status"`
	TotalCents         int64      `json:"totalCents"`
	DepositCents       int64      `json:"depositCents"`
	CreditAppliedCents int64      `json:"creditAppliedCents"`
	DepositDueCents    int64      `json:"depositDueCents"`
	BalanceDueCents    int64      `json:"balanceDueCents"`
	FundedByCreditID   *uuid.UUID `json:"fundedByCreditId,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	var resp ReservationResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, errs.Wrap(err, "failed to build reservation response")
	}
	return &resp, nil
}

func FromReservation(r *reservation.Reservation) (*ReservationResponse, error) {
	if r == nil {
		return nil, errs.New("reservation is nil")
	}
	return FromReservationView(queries.NewReservationView(r))
}

type SlotResponse struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
}

type SlotListResponse struct {
	CourtID  uuid.UUID      `json:"courtId"`
	Date     string         `json:"date"`
	TimeZone string         `json:"timeZone"`
	Slots    []SlotResponse `json:"slots"`
}

func FromSlotListing(l *queries.SlotListing) *SlotListResponse {
	resp := &SlotListResponse{
		CourtID:  l.CourtID,
		Date:     l.Date.String(),
		TimeZone: l.TimeZone,
		Slots:    []SlotResponse{},
	}
	for s := range l.Slots {
		resp.Slots = append(resp.Slots, SlotResponse{
			Start:  s.Start,
			End:    s.End,
			Status: string(s.Status),
		})
	}
	return resp
}
