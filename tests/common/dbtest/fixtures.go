//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateTestVenue inserts a venue open from opensMin to closesMin local minutes.
func CreateTestVenue(t *testing.T, db DBLike, ownerID uuid.UUID, opensMin, closesMin int, timeZone string) uuid.UUID {
	t.Helper()

	venueID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO venues (id, owner_id, name, opens_min, closes_min, time_zone) VALUES ($1, $2, $3, $4, $5, $6)",
		venueID, ownerID, "Test Venue "+venueID.String()[:8], opensMin, closesMin, timeZone)
	require.NoError(t, err)
	return venueID
}

type CourtOpts struct {
	SlotMinutes        int
	GranularityMinutes int
	HourlyRateCents    int64
	DepositCents       int64
	Active             bool
}

func DefaultCourtOpts() CourtOpts {
	return CourtOpts{
		SlotMinutes:        60,
		GranularityMinutes: 30,
		HourlyRateCents:    10000,
		DepositCents:       3000,
		Active:             true,
	}
}

func CreateTestCourt(t *testing.T, db DBLike, venueID uuid.UUID, opts CourtOpts) uuid.UUID {
	t.Helper()

	courtID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO courts (id, venue_id, name, slot_minutes, granularity_minutes, hourly_rate_cents, deposit_cents, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		courtID, venueID, "Court "+courtID.String()[:8], opts.SlotMinutes, opts.GranularityMinutes,
		opts.HourlyRateCents, opts.DepositCents, opts.Active)
	require.NoError(t, err)
	return courtID
}

// CountActiveReservations counts reservations on a court that still hold their slot.
func CountActiveReservations(t *testing.T, db DBLike, courtID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM reservations WHERE court_id = $1 AND payment_status <> 'CANCELLED'", courtID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	truncateOnce sync.Once
	truncateStmt string
	truncateErr  error
)

// ResetDB truncates every application table, keeping the migration history.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	truncateOnce.Do(func() {
		truncateStmt, truncateErr = buildTruncate(ctx, pool)
	})
	if truncateErr != nil {
		return truncateErr
	}
	if truncateStmt == "" {
		return nil
	}
	_, err := pool.Exec(ctx, truncateStmt)
	return errs.Wrap(err, "truncate tables")
}

func buildTruncate(ctx context.Context, pool *pgxpool.Pool) (string, error) {
	rows, err := pool.Query(ctx, `
		SELECT 'public.' || quote_ident(tablename)
		FROM pg_tables
		WHERE schemaname = 'public' AND tablename <> 'schema_migrations'
		ORDER BY tablename`)
	if err != nil {
		return "", errs.Wrap(err, "list tables")
	}
	tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return "", errs.Wrap(err, "scan table names")
	}
	if len(tables) == 0 {
		return "", nil
	}
	return "TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE", nil
}
