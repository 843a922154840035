package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/credit"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/ledger"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/reservation"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/venue"
	"github.com/Arielcito/rcfapp-sub002/internal/infra"
	"github.com/Arielcito/rcfapp-sub002/internal/infra/readstore"
	"github.com/Arielcito/rcfapp-sub002/internal/infra/repository"
	sqlc "github.com/Arielcito/rcfapp-sub002/internal/infra/sqlc/generated"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/config"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

const defaultMaxRetries = 3

type PostgresUoW struct {
	pool       *pgxpool.Pool
	q          *sqlc.Queries
	maxRetries int
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.DBConfig) shared.UnitOfWork {
	maxRetries := cfg.TxMaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		maxRetries: maxRetries,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, r shared.Reads) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) Reads() shared.Reads {
	return newReads(u.q, u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	maxRetries := u.maxRetries
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return markBeginErr(err)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, r shared.Reads) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return markBeginErr(err)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, newReads(u.q, pgxTx)); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

// An unreachable database surfaces as ErrStorageUnavailable so the caller can answer 503.
func markBeginErr(err error) error {
	if infra.IsUnavailable(err) {
		return errs.Mark(errs.Mark(err, errTransactionBegin), errs.ErrStorageUnavailable)
	}
	return errs.Mark(err, errTransactionBegin)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	reservationRepo shared.ReservationRepository
	creditRepo      shared.CreditRepository
	ledgerRepo      shared.LedgerRepository
	idempotencyRepo shared.IdempotencyRepository
	outboxRepo      shared.OutboxRepository
	reads           shared.Reads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Credits() shared.CreditRepository {
	if t.creditRepo == nil {
		t.creditRepo = repository.NewCreditRepository(t.uow.q, t.dbtx)
	}
	return t.creditRepo
}

func (t *pgTx) Ledger() shared.LedgerRepository {
	if t.ledgerRepo == nil {
		t.ledgerRepo = repository.NewLedgerRepository(t.uow.q, t.dbtx)
	}
	return t.ledgerRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.uow.q, t.dbtx)
	}
	return t.outboxRepo
}

func (t *pgTx) Reads() shared.Reads {
	if t.reads == nil {
		t.reads = newReads(t.uow.q, t.dbtx)
	}
	return t.reads
}

// reads binds every readstore to one DBTX, either the pool or an open transaction.
type reads struct {
	directory   *readstore.DirectoryReadStore
	reservation *readstore.ReservationReadStore
	credit      *readstore.CreditReadStore
	ledger      *readstore.LedgerReadStore
	idempotency *readstore.IdempotencyReadStore
}

func newReads(q *sqlc.Queries, db sqlc.DBTX) *reads {
	return &reads{
		directory:   readstore.NewDirectoryReadStore(q, db),
		reservation: readstore.NewReservationReadStore(q, db),
		credit:      readstore.NewCreditReadStore(q, db),
		ledger:      readstore.NewLedgerReadStore(q, db),
		idempotency: readstore.NewIdempotencyReadStore(q, db),
	}
}

func (r *reads) VenueByID(ctx context.Context, id uuid.UUID) (venue.Venue, error) {
	return r.directory.VenueByID(ctx, id)
}

func (r *reads) CourtByID(ctx context.Context, id uuid.UUID) (venue.Court, error) {
	return r.directory.CourtByID(ctx, id)
}

func (r *reads) ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return r.reservation.FindByID(ctx, id)
}

func (r *reads) ActiveReservations(ctx context.Context, courtID uuid.UUID, window reservation.Interval) ([]reservation.Interval, error) {
	return r.reservation.ActiveIntervals(ctx, courtID, window)
}

func (r *reads) Rebookings(ctx context.Context, q shared.RebookingQuery) ([]reservation.Interval, error) {
	return r.reservation.Rebookings(ctx, q)
}

func (r *reads) CreditByID(ctx context.Context, id uuid.UUID) (*credit.Credit, error) {
	return r.credit.FindByID(ctx, id)
}

func (r *reads) CreditsByPlayer(ctx context.Context, playerID uuid.UUID, venueID *uuid.UUID) ([]*credit.Credit, error) {
	return r.credit.FindByPlayer(ctx, playerID, venueID)
}

func (r *reads) Movements(ctx context.Context, venueID uuid.UUID, from, to time.Time) ([]*ledger.Movement, error) {
	return r.ledger.Movements(ctx, venueID, from, to)
}

func (r *reads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	return r.idempotency.Get(ctx, key, userID)
}
