package repository

import (
	"context"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/infra"
	sqlc "github.com/Arielcito/rcfapp-sub002/internal/infra/sqlc/generated"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyWriteQueries interface {
	ClaimIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimIdempotencyKeyParams) (uuid.UUID, error)
	SetIdempotencyKeyReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.SetIdempotencyKeyReservationParams) error
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX, expiresAt pgtype.Timestamptz) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      sqlc.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db sqlc.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *IdempotencyRepository) Claim(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, requestHash string, now, expiresAt time.Time) (bool, error) {
	params := sqlc.ClaimIdempotencyKeyParams{
		Key:         key,
		UserID:      userID,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
		Now:         pgconv.TimeToPgtype(now),
	}

	_, err := r.queries.ClaimIdempotencyKey(ctx, tx, params)
	if err != nil {
		// A live key makes the upsert's WHERE false, so no row comes back.
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to claim idempotency key", err)
	}

	return true, nil
}

func (r *IdempotencyRepository) AttachReservation(ctx context.Context, tx sqlc.DBTX, key, userID, reservationID uuid.UUID) error {
	params := sqlc.SetIdempotencyKeyReservationParams{
		Key:           key,
		UserID:        userID,
		ReservationID: pgconv.UUIDToPgtype(reservationID),
	}

	if err := r.queries.SetIdempotencyKeyReservation(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to attach reservation to idempotency key", err)
	}

	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error) {
	n, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return n, nil
}
