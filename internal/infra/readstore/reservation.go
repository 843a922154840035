package readstore

import (
	"context"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/reservation"
	"github.com/Arielcito/rcfapp-sub002/internal/infra"
	"github.com/Arielcito/rcfapp-sub002/internal/infra/repository/converter"
	sqlc "github.com/Arielcito/rcfapp-sub002/internal/infra/sqlc/generated"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/pgconv"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationReadQueries interface {
	GetReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationRow, error)
	ListActiveReservationsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveReservationsInRangeParams) ([]sqlc.ListActiveReservationsInRangeRow, error)
	ListRebookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRebookingsParams) ([]sqlc.ListRebookingsRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservation(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return converter.ReservationFromRow(row), nil
}

// ActiveIntervals returns the non-cancelled bookings of a court overlapping window, ordered by start.
func (r *ReservationReadStore) ActiveIntervals(ctx context.Context, courtID uuid.UUID, window reservation.Interval) ([]reservation.Interval, error) {
	params := sqlc.ListActiveReservationsInRangeParams{
		CourtID:    courtID,
		RangeStart: pgconv.TimeToPgtype(window.Start),
		RangeEnd:   pgconv.TimeToPgtype(window.End),
	}

	rows, err := r.queries.ListActiveReservationsInRange(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations", err)
	}

	result := make([]reservation.Interval, len(rows))
	for i, row := range rows {
		result[i] = converter.IntervalFromPgtype(row.StartsAt, row.EndsAt)
	}
	return result, nil
}

func (r *ReservationReadStore) Rebookings(ctx context.Context, q shared.RebookingQuery) ([]reservation.Interval, error) {
	params := sqlc.ListRebookingsParams{
		CourtID:       q.CourtID,
		ExcludeID:     q.ExcludeID,
		RangeStart:    pgconv.TimeToPgtype(q.Interval.Start),
		RangeEnd:      pgconv.TimeToPgtype(q.Interval.End),
		CreatedFrom:   pgconv.TimeToPgtype(q.CreatedFrom),
		CreatedBefore: pgconv.TimeToPgtype(q.CreatedBefore),
	}

	rows, err := r.queries.ListRebookings(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rebookings", err)
	}

	result := make([]reservation.Interval, len(rows))
	for i, row := range rows {
		result[i] = converter.IntervalFromPgtype(row.StartsAt, row.EndsAt)
	}
	return result, nil
}
