package queries

import (
	"iter"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/credit"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/ledger"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/reservation"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/clock"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID                 uuid.UUID  `json:"id"`
	CourtID            uuid.UUID  `json:"court_id"`
	VenueID            uuid.UUID  `json:"venue_id"`
	PlayerID           uuid.UUID  `json:"player_id"`
	Start              time.Time  `json:"start"`
	End                time.Time  `json:"end"`
	DurationMinutes    int        `json:"duration_minutes"`
	Status             string     `json:"status"`
	TotalCents         int64      `json:"total_cents"`
	DepositCents       int64      `json:"deposit_cents"`
	CreditAppliedCents int64      `json:"credit_applied_cents"`
	DepositDueCents    int64      `json:"deposit_due_cents"`
	BalanceDueCents    int64      `json:"balance_due_cents"`
	FundedByCreditID   *uuid.UUID `json:"funded_by_credit_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
}

func NewReservationView(r *reservation.Reservation) *ReservationView {
	iv := r.Interval()
	return &ReservationView{
		ID:                 r.ID(),
		CourtID:            r.CourtID(),
		VenueID:            r.VenueID(),
		PlayerID:           r.PlayerID(),
		Start:              iv.Start,
		End:                iv.End,
		DurationMinutes:    int(iv.Duration() / time.Minute),
		Status:             r.Status().String(),
		TotalCents:         r.Quote().TotalCents,
		DepositCents:       r.Quote().DepositCents,
		CreditAppliedCents: r.CreditAppliedCents(),
		DepositDueCents:    r.DepositDueCents(),
		BalanceDueCents:    r.BalanceDueCents(),
		FundedByCreditID:   r.FundedByCreditID(),
		CreatedAt:          r.CreatedAt(),
		CancelledAt:        r.CancelledAt(),
	}
}

// SlotListing carries a lazily evaluated day of slots. Ranging Slots twice
// yields the same sequence; nothing is cached between calls to ListSlots.
type SlotListing struct {
	CourtID  uuid.UUID
	Date     clock.Date
	TimeZone string
	Slots    iter.Seq[reservation.Slot]
}

type CreditView struct {
	ID                  uuid.UUID  `json:"id"`
	PlayerID            uuid.UUID  `json:"player_id"`
	VenueID             uuid.UUID  `json:"venue_id"`
	SourceReservationID uuid.UUID  `json:"source_reservation_id"`
	AmountCents         int64      `json:"amount_cents"`
	Status              string     `json:"status"`
	IssuedAt            time.Time  `json:"issued_at"`
	ExpiresAt           *time.Time `json:"expires_at,omitempty"`
	ResolveAfter        *time.Time `json:"resolve_after,omitempty"`
	SingleUse           bool       `json:"single_use"`
	ConsumedBy          *uuid.UUID `json:"consumed_by,omitempty"`
}

// NewCreditView reports an available credit already past its expiry as
// EXPIRED even before the sweep persists it.
func NewCreditView(c *credit.Credit, now time.Time) *CreditView {
	status := c.Status()
	if c.IsDue(now) {
		status = credit.StatusExpired
	}
	return &CreditView{
		ID:                  c.ID(),
		PlayerID:            c.PlayerID(),
		VenueID:             c.VenueID(),
		SourceReservationID: c.SourceReservationID(),
		AmountCents:         c.AmountCents(),
		Status:              status.String(),
		IssuedAt:            c.IssuedAt(),
		ExpiresAt:           c.ExpiresAt(),
		ResolveAfter:        c.ResolveAfter(),
		SingleUse:           c.SingleUse(),
		ConsumedBy:          c.ConsumedBy(),
	}
}

type MovementView struct {
	ID            uuid.UUID  `json:"id"`
	VenueID       uuid.UUID  `json:"venue_id"`
	Kind          string     `json:"kind"`
	AmountCents   int64      `json:"amount_cents"`
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
	CreditID      *uuid.UUID `json:"credit_id,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
	Method        string     `json:"method,omitempty"`
	Stage         string     `json:"stage,omitempty"`
	Description   string     `json:"description"`
}

func NewMovementView(m *ledger.Movement) *MovementView {
	return &MovementView{
		ID:            m.ID(),
		VenueID:       m.VenueID(),
		Kind:          m.Kind().String(),
		AmountCents:   m.AmountCents(),
		ReservationID: m.ReservationID(),
		CreditID:      m.CreditID(),
		OccurredAt:    m.OccurredAt(),
		Method:        string(m.Method()),
		Stage:         string(m.Stage()),
		Description:   m.Description(),
	}
}

type TotalsView struct {
	IncomeCents  int64 `json:"income_cents"`
	ExpenseCents int64 `json:"expense_cents"`
	NetCents     int64 `json:"net_cents"`
}

type CajaReport struct {
	VenueID   uuid.UUID             `json:"venue_id"`
	From      time.Time             `json:"from"`
	To        time.Time             `json:"to"`
	Movements []*MovementView       `json:"movements"`
	Totals    TotalsView            `json:"totals"`
	ByMethod  map[string]TotalsView `json:"by_method"`
}
