package response

import (
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreditResponse struct {
	ID                  uuid.UUID  `json:"id"`
	PlayerID            uuid.UUID  `json:"playerId"`
	VenueID             uuid.UUID  `json:"venueId"`
	SourceReservationID uuid.UUID  `json:"sourceReservationId"`
	AmountCents         int64      `json:"amountCents"`
	Status              string     `json:"status"`
	IssuedAt            time.Time  `json:"issuedAt"`
	ExpiresAt           *time.Time `json:"expiresAt,omitempty"`
	ResolveAfter        *time.Time `json:"resolveAfter,omitempty"`
	SingleUse           bool       `json:"singleUse"`
	ConsumedBy          *uuid.UUID `json:"consumedBy,omitempty"`
}

func FromCreditView(v *queries.CreditView) (*CreditResponse, error) {
	var resp CreditResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, errs.Wrap(err, "failed to build credit response")
	}
	return &resp, nil
}

func FromCreditViews(vs []*queries.CreditView) ([]*CreditResponse, error) {
	out := make([]*CreditResponse, len(vs))
	for i, v := range vs {
		resp, err := FromCreditView(v)
		if err != nil {
			return nil, err
		}
		out[i] = resp
	}
	return out, nil
}
