//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Arielcito/rcfapp-sub002/internal/infra"
	"github.com/Arielcito/rcfapp-sub002/internal/infra/readstore"
	sqlc "github.com/Arielcito/rcfapp-sub002/internal/infra/sqlc/generated"
	readstoremock "github.com/Arielcito/rcfapp-sub002/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDirectoryReadStore_VenueByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name     string
		row      sqlc.GetVenueRow
		err      error
		wantKind infra.RepositoryErrorKind
	}{
		{
			name: "success: hours and zone are mapped",
			row:  sqlc.GetVenueRow{ID: id, OwnerID: uuid.New(), Name: "Club Norte", OpensMin: 8 * 60, ClosesMin: 23 * 60, TimeZone: "America/Argentina/Buenos_Aires"},
		},
		{name: "error: missing venue", err: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "error: database error occurs", err: errors.New("database connection error"), wantKind: infra.KindDBFailure},
		{
			name:     "error: inconsistent opening hours",
			row:      sqlc.GetVenueRow{ID: id, OpensMin: 20 * 60, ClosesMin: 8 * 60},
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockDirectoryReadQueries(ctrl)
			store := readstore.NewDirectoryReadStore(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().GetVenue(ctx, gomock.Any(), id).Return(tc.row, tc.err)

			v, err := store.VenueByID(ctx, id)

			if tc.wantKind != "" {
				assert.True(t, infra.IsKind(err, tc.wantKind), "expected kind [%v] but got (%v)", tc.wantKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 8*60, v.Hours.Opens())
			assert.Equal(t, 23*60, v.Hours.Closes())
			assert.Equal(t, "America/Argentina/Buenos_Aires", v.TimeZone)
		})
	}
}

func TestDirectoryReadStore_CourtByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success: court settings are mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockDirectoryReadQueries(ctrl)
		store := readstore.NewDirectoryReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetCourt(ctx, gomock.Any(), id).Return(sqlc.GetCourtRow{
			ID: id, VenueID: uuid.New(), Name: "Cancha 1",
			SlotMinutes: 60, GranularityMinutes: 30,
			HourlyRateCents: 10000, DepositCents: 3000, IsActive: true,
		}, nil)

		c, err := store.CourtByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, 60, c.SlotMinutes)
		assert.Equal(t, 30, c.GranularityMinutes)
		assert.Equal(t, int64(3000), c.DepositCents)
		assert.True(t, c.Active)
	})

	t.Run("error: missing court", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockDirectoryReadQueries(ctrl)
		store := readstore.NewDirectoryReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetCourt(ctx, gomock.Any(), id).Return(sqlc.GetCourtRow{}, pgx.ErrNoRows)

		_, err := store.CourtByID(ctx, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
