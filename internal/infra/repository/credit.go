package repository

import (
	"context"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/credit"
	"github.com/Arielcito/rcfapp-sub002/internal/infra"
	"github.com/Arielcito/rcfapp-sub002/internal/infra/repository/converter"
	sqlc "github.com/Arielcito/rcfapp-sub002/internal/infra/sqlc/generated"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/pgconv"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreditWriteQueries interface {
	CreateCredit(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCreditParams) error
	GetCreditForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Credit, error)
	UpdateCredit(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCreditParams) error
	ListPendingCreditsForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPendingCreditsForUpdateParams) ([]sqlc.Credit, error)
	ListExpiredCreditsForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListExpiredCreditsForUpdateParams) ([]sqlc.Credit, error)
}

type CreditRepository struct {
	queries CreditWriteQueries
	db      sqlc.DBTX
}

func NewCreditRepository(queries CreditWriteQueries, db sqlc.DBTX) *CreditRepository {
	return &CreditRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CreditRepository) Create(ctx context.Context, tx sqlc.DBTX, c *credit.Credit) error {
	if err := r.queries.CreateCredit(ctx, tx, converter.CreditToInfra(c)); err != nil {
		return infra.WrapRepoErr("failed to create credit", err)
	}
	return nil
}

func (r *CreditRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*credit.Credit, error) {
	row, err := r.queries.GetCreditForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock credit", err)
	}
	return converter.CreditFromRow(row), nil
}

func (r *CreditRepository) Update(ctx context.Context, tx sqlc.DBTX, c *credit.Credit) error {
	if err := r.queries.UpdateCredit(ctx, tx, converter.CreditUpdateToInfra(c)); err != nil {
		return infra.WrapRepoErr("failed to update credit", err)
	}
	return nil
}

func (r *CreditRepository) ListPendingForUpdate(ctx context.Context, tx sqlc.DBTX, after shared.PendingCursor, limit int) ([]*credit.Credit, error) {
	rows, err := r.queries.ListPendingCreditsForUpdate(ctx, tx, sqlc.ListPendingCreditsForUpdateParams{
		AfterResolveAfter: pgconv.TimeToPgtype(after.ResolveAfter),
		AfterID:           after.ID,
		BatchSize:         int32(limit), // #nosec G115 -- batch sizes come from config
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending credits", err)
	}
	return converter.CreditsFromRows(rows), nil
}

func (r *CreditRepository) ListExpiredForUpdate(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int) ([]*credit.Credit, error) {
	rows, err := r.queries.ListExpiredCreditsForUpdate(ctx, tx, sqlc.ListExpiredCreditsForUpdateParams{
		Now:       pgconv.TimeToPgtype(now),
		BatchSize: int32(limit), // #nosec G115 -- batch sizes come from config
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired credits", err)
	}
	return converter.CreditsFromRows(rows), nil
}
