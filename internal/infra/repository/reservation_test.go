//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/reservation"
	"github.com/Arielcito/rcfapp-sub002/internal/infra"
	"github.com/Arielcito/rcfapp-sub002/internal/infra/repository"
	sqlc "github.com/Arielcito/rcfapp-sub002/internal/infra/sqlc/generated"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/pgconv"
	"github.com/Arielcito/rcfapp-sub002/tests/common/builder"
	repositorymock "github.com/Arielcito/rcfapp-sub002/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Reservation Tests
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReservationWriteQueries, *reservation.Reservation, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation created with its interval and quote",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error) {
						assert.Equal(t, res.ID(), arg.ID)
						assert.True(t, arg.StartsAt.Time.Equal(res.Interval().Start))
						assert.True(t, arg.EndsAt.Time.Equal(res.Interval().End))
						assert.Equal(t, int64(10000), arg.TotalCents)
						assert.Equal(t, int64(3000), arg.DepositCents)
						assert.Equal(t, "DEPOSIT_PENDING", arg.PaymentStatus)
						return arg.ID, nil
					})
			},
		},
		{
			name: "error: overlapping booking hits the exclusion constraint",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx sqlc.DBTX) {
				overlap := &pgconn.PgError{Code: "23P01", Message: `conflicting key value violates exclusion constraint "reservations_no_overlap"`}
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(uuid.Nil, overlap)
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
		{
			name: "error: unknown court violates the foreign key",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(uuid.Nil, fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(uuid.Nil, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			res := builder.NewReservationBuilder().BuildDomain()
			tc.setupMock(mockQueries, res, mockDB)

			id, actualError := repo.Create(ctx, mockDB, res)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, actualError)
				assert.Equal(t, res.ID(), id)
			}
		})
	}
}

// =============================================================================
// FindForUpdate Tests
// =============================================================================

func TestReservationRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, time.March, 12, 20, 0, 0, 0, time.UTC)
	cancelledAt := start.Add(-2 * time.Hour)
	creditID := uuid.New()

	t.Run("success: row is mapped back to the domain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		row := sqlc.GetReservationForUpdateRow{
			ID:                 uuid.New(),
			CourtID:            uuid.New(),
			VenueID:            uuid.New(),
			PlayerID:           uuid.New(),
			StartsAt:           pgconv.TimeToPgtype(start),
			EndsAt:             pgconv.TimeToPgtype(start.Add(90 * time.Minute)),
			TotalCents:         15000,
			DepositCents:       3000,
			PaymentStatus:      "CANCELLED",
			FundedByCreditID:   pgconv.UUIDToPgtype(creditID),
			CreditAppliedCents: 3000,
			CreatedAt:          pgconv.TimeToPgtype(start.Add(-48 * time.Hour)),
			CancelledAt:        pgconv.TimeToPgtype(cancelledAt),
		}
		mockQueries.EXPECT().GetReservationForUpdate(ctx, mockDB, row.ID).Return(row, nil)

		res, err := repo.FindForUpdate(ctx, mockDB, row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, res.ID())
		assert.Equal(t, reservation.StatusCancelled, res.Status())
		assert.Equal(t, 90*time.Minute, res.Interval().Duration())
		require.NotNil(t, res.FundedByCreditID())
		assert.Equal(t, creditID, *res.FundedByCreditID())
		require.NotNil(t, res.CancelledAt())
		assert.True(t, res.CancelledAt().Equal(cancelledAt))
	})

	t.Run("error: missing row is KindNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		id := uuid.New()
		mockQueries.EXPECT().GetReservationForUpdate(ctx, mockDB, id).Return(sqlc.GetReservationForUpdateRow{}, pgx.ErrNoRows)

		res, err := repo.FindForUpdate(ctx, mockDB, id)

		assert.Nil(t, res)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// UpdatePayment Tests
// =============================================================================

func TestReservationRepository_UpdatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("success: payment fields are written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		res := builder.NewReservationBuilder().WithStatus(reservation.StatusCancelled).BuildDomain()
		mockQueries.EXPECT().UpdateReservationPayment(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateReservationPaymentParams) error {
				assert.Equal(t, res.ID(), arg.ID)
				assert.Equal(t, "CANCELLED", arg.PaymentStatus)
				assert.True(t, arg.CancelledAt.Valid)
				assert.False(t, arg.FundedByCreditID.Valid)
				return nil
			})

		assert.NoError(t, repo.UpdatePayment(ctx, mockDB, res))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpdateReservationPayment(ctx, mockDB, gomock.Any()).Return(errors.New("database connection error"))

		err := repo.UpdatePayment(ctx, mockDB, builder.NewReservationBuilder().BuildDomain())

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
