package readstore

import (
	"context"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/ledger"
	"github.com/Arielcito/rcfapp-sub002/internal/infra"
	"github.com/Arielcito/rcfapp-sub002/internal/infra/repository/converter"
	sqlc "github.com/Arielcito/rcfapp-sub002/internal/infra/sqlc/generated"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LedgerReadQueries interface {
	ListLedgerMovements(ctx context.Context, db sqlc.DBTX, arg sqlc.ListLedgerMovementsParams) ([]sqlc.ListLedgerMovementsRow, error)
}

type LedgerReadStore struct {
	queries LedgerReadQueries
	db      sqlc.DBTX
}

func NewLedgerReadStore(queries LedgerReadQueries, db sqlc.DBTX) *LedgerReadStore {
	return &LedgerReadStore{
		queries: queries,
		db:      db,
	}
}

// Movements returns the venue's movements with from <= occurred_at <= to, oldest first.
func (r *LedgerReadStore) Movements(ctx context.Context, venueID uuid.UUID, from, to time.Time) ([]*ledger.Movement, error) {
	params := sqlc.ListLedgerMovementsParams{
		VenueID:  venueID,
		FromTime: pgconv.TimeToPgtype(from),
		ToTime:   pgconv.TimeToPgtype(to),
	}

	rows, err := r.queries.ListLedgerMovements(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ledger movements", err)
	}

	result := make([]*ledger.Movement, len(rows))
	for i, row := range rows {
		result[i] = converter.MovementFromRow(row)
	}
	return result, nil
}
