//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/credit"
	"github.com/Arielcito/rcfapp-sub002/internal/infra"
	"github.com/Arielcito/rcfapp-sub002/internal/infra/repository"
	sqlc "github.com/Arielcito/rcfapp-sub002/internal/infra/sqlc/generated"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/pgconv"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/shared"
	repositorymock "github.com/Arielcito/rcfapp-sub002/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var creditIssuedAt = time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC)

func pendingCredit() *credit.Credit {
	resolveAfter := creditIssuedAt.Add(6 * time.Hour)
	return credit.ReconstructCredit(
		uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		3000, credit.StatusPendingResolution, creditIssuedAt,
		nil, &resolveAfter, nil, false, nil,
	)
}

func TestCreditRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: pending credit keeps resolveAfter and no expiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCreditWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewCreditRepository(mockQueries, mockDB)

		c := pendingCredit()
		mockQueries.EXPECT().CreateCredit(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateCreditParams) error {
				assert.Equal(t, c.ID(), arg.ID)
				assert.Equal(t, "PENDING_RESOLUTION", arg.Status)
				assert.False(t, arg.ExpiresAt.Valid)
				assert.True(t, arg.ResolveAfter.Valid)
				assert.Equal(t, int64(3000), arg.AmountCents)
				return nil
			})

		assert.NoError(t, repo.Create(ctx, mockDB, c))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCreditWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewCreditRepository(mockQueries, mockDB)

		mockQueries.EXPECT().CreateCredit(ctx, mockDB, gomock.Any()).Return(errors.New("database connection error"))

		err := repo.Create(ctx, mockDB, pendingCredit())

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCreditRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: consumed credit maps its reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCreditWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewCreditRepository(mockQueries, mockDB)

		consumedBy := uuid.New()
		expires := creditIssuedAt.Add(21 * 24 * time.Hour)
		row := sqlc.Credit{
			ID:          uuid.New(),
			PlayerID:    uuid.New(),
			VenueID:     uuid.New(),
			AmountCents: 3000,
			Status:      "CONSUMED",
			IssuedAt:    pgconv.TimeToPgtype(creditIssuedAt),
			ExpiresAt:   pgconv.TimeToPgtype(expires),
			ConsumedBy:  pgconv.UUIDToPgtype(consumedBy),
		}
		mockQueries.EXPECT().GetCreditForUpdate(ctx, mockDB, row.ID).Return(row, nil)

		c, err := repo.FindForUpdate(ctx, mockDB, row.ID)

		require.NoError(t, err)
		assert.Equal(t, credit.StatusConsumed, c.Status())
		require.NotNil(t, c.ConsumedBy())
		assert.Equal(t, consumedBy, *c.ConsumedBy())
		require.NotNil(t, c.ExpiresAt())
		assert.True(t, c.ExpiresAt().Equal(expires))
		assert.Nil(t, c.ResolveAfter())
	})

	t.Run("error: missing row is KindNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCreditWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewCreditRepository(mockQueries, mockDB)

		id := uuid.New()
		mockQueries.EXPECT().GetCreditForUpdate(ctx, mockDB, id).Return(sqlc.Credit{}, pgx.ErrNoRows)

		_, err := repo.FindForUpdate(ctx, mockDB, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCreditRepository_ListPendingForUpdate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockCreditWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewCreditRepository(mockQueries, mockDB)

	cursor := shared.PendingCursor{ResolveAfter: creditIssuedAt, ID: uuid.New()}
	mockQueries.EXPECT().ListPendingCreditsForUpdate(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListPendingCreditsForUpdateParams) ([]sqlc.Credit, error) {
			assert.True(t, arg.AfterResolveAfter.Time.Equal(cursor.ResolveAfter))
			assert.Equal(t, cursor.ID, arg.AfterID)
			assert.Equal(t, int32(25), arg.BatchSize)
			return []sqlc.Credit{{ID: uuid.New(), Status: "PENDING_RESOLUTION"}, {ID: uuid.New(), Status: "PENDING_RESOLUTION"}}, nil
		})

	credits, err := repo.ListPendingForUpdate(ctx, mockDB, cursor, 25)

	require.NoError(t, err)
	assert.Len(t, credits, 2)
}

func TestCreditRepository_ListExpiredForUpdate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockCreditWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewCreditRepository(mockQueries, mockDB)

	mockQueries.EXPECT().ListExpiredCreditsForUpdate(ctx, mockDB, gomock.Any()).Return(nil, errors.New("timeout"))

	credits, err := repo.ListExpiredForUpdate(ctx, mockDB, creditIssuedAt, 50)

	assert.Nil(t, credits)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
