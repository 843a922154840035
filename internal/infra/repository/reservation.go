package repository

import (
	"context"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/reservation"
	"github.com/Arielcito/rcfapp-sub002/internal/infra"
	"github.com/Arielcito/rcfapp-sub002/internal/infra/repository/converter"
	sqlc "github.com/Arielcito/rcfapp-sub002/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationForUpdateRow, error)
	UpdateReservationPayment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationPaymentParams) error
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create surfaces an overlapping booking as KindConflict through the
// reservations_no_overlap exclusion constraint.
func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	params := converter.ReservationToInfra(res)

	resultID, err := r.queries.CreateReservation(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return resultID, nil
}

func (r *ReservationRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return converter.ReservationFromRow(sqlc.GetReservationRow(row)), nil
}

func (r *ReservationRepository) UpdatePayment(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.queries.UpdateReservationPayment(ctx, tx, converter.ReservationPaymentToInfra(res)); err != nil {
		return infra.WrapRepoErr("failed to update reservation payment", err)
	}
	return nil
}
