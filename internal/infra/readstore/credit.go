package readstore

import (
	"context"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/credit"
	"github.com/Arielcito/rcfapp-sub002/internal/infra"
	"github.com/Arielcito/rcfapp-sub002/internal/infra/repository/converter"
	sqlc "github.com/Arielcito/rcfapp-sub002/internal/infra/sqlc/generated"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CreditReadQueries interface {
	GetCredit(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Credit, error)
	ListCreditsByPlayer(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCreditsByPlayerParams) ([]sqlc.Credit, error)
}

type CreditReadStore struct {
	queries CreditReadQueries
	db      sqlc.DBTX
}

func NewCreditReadStore(queries CreditReadQueries, db sqlc.DBTX) *CreditReadStore {
	return &CreditReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CreditReadStore) FindByID(ctx context.Context, id uuid.UUID) (*credit.Credit, error) {
	row, err := r.queries.GetCredit(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("credit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find credit by ID", err)
	}
	return converter.CreditFromRow(row), nil
}

// FindByPlayer lists a player's credits, newest first; venueID narrows to one venue when set.
func (r *CreditReadStore) FindByPlayer(ctx context.Context, playerID uuid.UUID, venueID *uuid.UUID) ([]*credit.Credit, error) {
	params := sqlc.ListCreditsByPlayerParams{
		PlayerID: playerID,
		VenueID:  pgconv.UUIDPtrToPgtype(venueID),
	}

	rows, err := r.queries.ListCreditsByPlayer(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list credits", err)
	}
	return converter.CreditsFromRows(rows), nil
}
