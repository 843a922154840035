//go:build unit || e2e

package builder

import (
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/reservation"
	"github.com/Arielcito/rcfapp-sub002/internal/handler/dto/request"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID              uuid.UUID
	CourtID         uuid.UUID
	VenueID         uuid.UUID
	PlayerID        uuid.UUID
	Start           time.Time
	DurationMinutes int
	DepositRequired bool
	TotalCents      int64
	DepositCents    int64
	Status          reservation.Status
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:              uuid.New(),
		CourtID:         uuid.New(),
		VenueID:         uuid.New(),
		PlayerID:        uuid.New(),
		Start:           time.Now().Add(48 * time.Hour).Truncate(time.Hour).UTC(),
		DurationMinutes: 60,
		DepositRequired: true,
		TotalCents:      10000,
		DepositCents:    3000,
		Status:          reservation.StatusDepositPending,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithCourtID(id uuid.UUID) *ReservationBuilder {
	b.CourtID = id
	return b
}

func (b *ReservationBuilder) WithStart(start time.Time) *ReservationBuilder {
	b.Start = start
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

// Build methods
func (b *ReservationBuilder) BuildReserveRequestDTO() request.ReserveRequest {
	minutes := b.DurationMinutes
	return request.ReserveRequest{
		CourtID:         b.CourtID,
		Start:           b.Start,
		DurationMinutes: &minutes,
		DepositRequired: b.DepositRequired,
	}
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	var cancelledAt *time.Time
	if b.Status == reservation.StatusCancelled {
		at := b.Start.Add(-time.Hour)
		cancelledAt = &at
	}
	return reservation.ReconstructReservation(
		b.ID, b.CourtID, b.VenueID, b.PlayerID,
		reservation.NewInterval(b.Start, time.Duration(b.DurationMinutes)*time.Minute),
		reservation.Quote{TotalCents: b.TotalCents, DepositCents: b.DepositCents},
		b.Status, nil, 0, b.Start.Add(-72*time.Hour), cancelledAt,
	)
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return queries.NewReservationView(b.BuildDomain())
}
