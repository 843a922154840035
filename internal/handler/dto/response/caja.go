package response

import (
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/ledger"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MovementResponse struct {
	ID            uuid.UUID  `json:"id"`
	VenueID       uuid.UUID  `json:"venueId"`
	Kind          string     `json:"kind"`
	AmountCents   int64      `json:"amountCents"`
	ReservationID *uuid.UUID `json:"reservationId,omitempty"`
	CreditID      *uuid.UUID `json:"creditId,omitempty"`
	OccurredAt    time.Time  `json:"occurredAt"`
	Method        string     `json:"method,omitempty"`
	Stage         string     `json:"stage,omitempty"`
	Description   string     `json:"description"`
}

type TotalsResponse struct {
	IncomeCents  int64 `json:"incomeCents"`
	ExpenseCents int64 `json:"expenseCents"`
	NetCents     int64 `json:"netCents"`
}

type CajaResponse struct {
	VenueID   uuid.UUID                 `json:"venueId"`
	From      time.Time                 `json:"from"`
	To        time.Time                 `json:"to"`
	Movements []*MovementResponse       `json:"movements"`
	Totals    TotalsResponse            `json:"totals"`
	ByMethod  map[string]TotalsResponse `json:"byMethod"`
}

func FromMovementView(v *queries.MovementView) (*MovementResponse, error) {
	var resp MovementResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, errs.Wrap(err, "failed to build movement response")
	}
	return &resp, nil
}

func FromMovement(m *ledger.Movement) (*MovementResponse, error) {
	if m == nil {
		return nil, errs.New("movement is nil")
	}
	return FromMovementView(queries.NewMovementView(m))
}

func FromCajaReport(r *queries.CajaReport) (*CajaResponse, error) {
	resp := &CajaResponse{
		VenueID:   r.VenueID,
		From:      r.From,
		To:        r.To,
		Movements: make([]*MovementResponse, len(r.Movements)),
		Totals:    TotalsResponse(r.Totals),
		ByMethod:  make(map[string]TotalsResponse, len(r.ByMethod)),
	}
	for i, m := range r.Movements {
		mv, err := FromMovementView(m)
		if err != nil {
			return nil, err
		}
		resp.Movements[i] = mv
	}
	for method, t := range r.ByMethod {
		resp.ByMethod[method] = TotalsResponse(t)
	}
	return resp, nil
}
