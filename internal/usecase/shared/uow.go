package shared

import (
	"context"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/credit"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/ledger"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/reservation"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/venue"
	sqlc "github.com/Arielcito/rcfapp-sub002/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, r Reads) error) error
	// Reads: Single query reads using implicit transactions
	Reads() Reads
}

type Tx interface {
	Reservations() ReservationRepository
	Credits() CreditRepository
	Ledger() LedgerRepository
	Idempotency() IdempotencyRepository
	Outbox() OutboxRepository
	Reads() Reads
	DB() sqlc.DBTX
}

// Reads are the queries shared by commands and queries.
type Reads interface {
	VenueByID(ctx context.Context, id uuid.UUID) (venue.Venue, error)
	CourtByID(ctx context.Context, id uuid.UUID) (venue.Court, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// ActiveReservations lists non-cancelled intervals on a court overlapping window.
	ActiveReservations(ctx context.Context, courtID uuid.UUID, window reservation.Interval) ([]reservation.Interval, error)
	Rebookings(ctx context.Context, q RebookingQuery) ([]reservation.Interval, error)
	CreditByID(ctx context.Context, id uuid.UUID) (*credit.Credit, error)
	CreditsByPlayer(ctx context.Context, playerID uuid.UUID, venueID *uuid.UUID) ([]*credit.Credit, error)
	Movements(ctx context.Context, venueID uuid.UUID, from, to time.Time) ([]*ledger.Movement, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	UpdatePayment(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
}

type CreditRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *credit.Credit) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*credit.Credit, error)
	Update(ctx context.Context, tx sqlc.DBTX, c *credit.Credit) error
	ListPendingForUpdate(ctx context.Context, tx sqlc.DBTX, after PendingCursor, limit int) ([]*credit.Credit, error)
	ListExpiredForUpdate(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int) ([]*credit.Credit, error)
}

type LedgerRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, m *ledger.Movement) error
	PaymentStageRecorded(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID, stage ledger.Stage) (bool, error)
}

type IdempotencyRepository interface {
	// Claim inserts the key, or takes over an expired one. It reports false when
	// a live key already exists.
	Claim(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, requestHash string, now, expiresAt time.Time) (bool, error)
	AttachReservation(ctx context.Context, tx sqlc.DBTX, key, userID, reservationID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, tx sqlc.DBTX, ev NewOutboxEvent) error
	ListUnpublishedForUpdate(ctx context.Context, tx sqlc.DBTX, limit int) ([]OutboxEvent, error)
	MarkPublished(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, reason string) error
}
