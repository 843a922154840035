//go:build unit

package repository_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/infra"
	"github.com/Arielcito/rcfapp-sub002/internal/infra/repository"
	sqlc "github.com/Arielcito/rcfapp-sub002/internal/infra/sqlc/generated"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/pgconv"
	repositorymock "github.com/Arielcito/rcfapp-sub002/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutboxRepository_ListUnpublishedForUpdate(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewOutboxRepository(mockQueries, mockDB)

	row := sqlc.ListUnpublishedOutboxEventsForUpdateRow{
		ID:            uuid.New(),
		AggregateType: "credit",
		AggregateID:   uuid.New(),
		EventType:     "credit.issued",
		Payload:       []byte(`{}`),
		CreatedAt:     pgconv.TimeToPgtype(created),
		Attempts:      3,
	}
	mockQueries.EXPECT().ListUnpublishedOutboxEventsForUpdate(ctx, mockDB, int32(10)).
		Return([]sqlc.ListUnpublishedOutboxEventsForUpdateRow{row}, nil)

	events, err := repo.ListUnpublishedForUpdate(ctx, mockDB, 10)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, row.ID, events[0].ID)
	assert.Equal(t, "credit.issued", events[0].EventType)
	assert.Equal(t, 3, events[0].Attempts)
	assert.True(t, events[0].CreatedAt.Equal(created))
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	ctx := context.Background()

	t.Run("success: reason is stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOutboxRepository(mockQueries, mockDB)

		id := uuid.New()
		mockQueries.EXPECT().MarkOutboxEventFailed(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.MarkOutboxEventFailedParams) error {
				assert.Equal(t, id, arg.ID)
				assert.True(t, arg.LastError.Valid)
				assert.True(t, strings.HasPrefix(arg.LastError.String, "broker"))
				return nil
			})

		assert.NoError(t, repo.MarkFailed(ctx, mockDB, id, "broker down"))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOutboxRepository(mockQueries, mockDB)

		mockQueries.EXPECT().MarkOutboxEventFailed(ctx, mockDB, gomock.Any()).Return(errors.New("database connection error"))

		err := repo.MarkFailed(ctx, mockDB, uuid.New(), "")

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
