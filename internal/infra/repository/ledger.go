package repository

import (
	"context"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/ledger"
	"github.com/Arielcito/rcfapp-sub002/internal/infra"
	"github.com/Arielcito/rcfapp-sub002/internal/infra/repository/converter"
	sqlc "github.com/Arielcito/rcfapp-sub002/internal/infra/sqlc/generated"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LedgerWriteQueries interface {
	CreateLedgerMovement(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateLedgerMovementParams) error
	PaymentStageRecorded(ctx context.Context, db sqlc.DBTX, arg sqlc.PaymentStageRecordedParams) (bool, error)
}

// LedgerRepository only appends; the table rejects updates and deletes.
type LedgerRepository struct {
	queries LedgerWriteQueries
	db      sqlc.DBTX
}

func NewLedgerRepository(queries LedgerWriteQueries, db sqlc.DBTX) *LedgerRepository {
	return &LedgerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LedgerRepository) Append(ctx context.Context, tx sqlc.DBTX, m *ledger.Movement) error {
	if err := r.queries.CreateLedgerMovement(ctx, tx, converter.MovementToInfra(m)); err != nil {
		return infra.WrapRepoErr("failed to append ledger movement", err)
	}
	return nil
}

func (r *LedgerRepository) PaymentStageRecorded(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID, stage ledger.Stage) (bool, error) {
	ok, err := r.queries.PaymentStageRecorded(ctx, tx, sqlc.PaymentStageRecordedParams{
		ReservationID: pgconv.UUIDToPgtype(reservationID),
		Stage:         pgconv.StringToNullablePgtype(string(stage)),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check payment stage", err)
	}
	return ok, nil
}
