//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/credit"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/user"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/clock"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/queries"
	queriesmock "github.com/Arielcito/rcfapp-sub002/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var issued = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

func (f *fixture) availableCredit(playerID uuid.UUID, expiresAt time.Time) *credit.Credit {
	c := credit.ReconstructCredit(
		uuid.New(), playerID, f.venue.ID, uuid.New(),
		3000, credit.StatusAvailable, issued,
		&expiresAt, nil, &issued, false, nil,
	)
	f.store.PutCredit(c)
	return c
}

func TestCreditGetByID(t *testing.T) {
	ctx := context.Background()
	expiresAt := issued.Add(21 * 24 * time.Hour)
	player := user.Actor{ID: uuid.New(), Role: user.RolePlayer}

	t.Run("期限前は失効処理を呼ばない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(t)
		c := f.availableCredit(player.ID, expiresAt)
		expirer := queriesmock.NewMockCreditExpirer(ctrl)
		q := queries.NewCreditQueries(f.store, expirer, clock.NewMockClock(expiresAt.Add(-time.Second)))

		view, err := q.GetByID(ctx, player, c.ID())

		require.NoError(t, err)
		assert.Equal(t, "AVAILABLE", view.Status)
		assert.Equal(t, int64(3000), view.AmountCents)
	})

	t.Run("期限を過ぎていれば失効を保存して返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(t)
		c := f.availableCredit(player.ID, expiresAt)
		expired := credit.ReconstructCredit(
			c.ID(), c.PlayerID(), c.VenueID(), c.SourceReservationID(),
			c.AmountCents(), credit.StatusExpired, issued,
			&expiresAt, nil, &issued, false, nil,
		)
		expirer := queriesmock.NewMockCreditExpirer(ctrl)
		expirer.EXPECT().ExpireIfDue(gomock.Any(), c.ID()).Return(expired, nil)
		q := queries.NewCreditQueries(f.store, expirer, clock.NewMockClock(expiresAt))

		view, err := q.GetByID(ctx, player, c.ID())

		require.NoError(t, err)
		assert.Equal(t, "EXPIRED", view.Status)
	})

	t.Run("失効処理の失敗はそのまま返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(t)
		c := f.availableCredit(player.ID, expiresAt)
		expirer := queriesmock.NewMockCreditExpirer(ctrl)
		expirer.EXPECT().ExpireIfDue(gomock.Any(), c.ID()).Return(nil, errs.ErrStorageUnavailable)
		q := queries.NewCreditQueries(f.store, expirer, clock.NewMockClock(expiresAt))

		_, err := q.GetByID(ctx, player, c.ID())

		assert.True(t, errs.Is(err, errs.ErrStorageUnavailable))
	})

	t.Run("オーナーは自分の会場のクレジットを見られる", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(t)
		c := f.availableCredit(player.ID, expiresAt)
		q := queries.NewCreditQueries(f.store, queriesmock.NewMockCreditExpirer(ctrl), clock.NewMockClock(issued))

		_, err := q.GetByID(ctx, f.owner, c.ID())

		assert.NoError(t, err)
	})

	t.Run("他の選手には存在を隠す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(t)
		c := f.availableCredit(player.ID, expiresAt)
		q := queries.NewCreditQueries(f.store, queriesmock.NewMockCreditExpirer(ctrl), clock.NewMockClock(issued))

		_, err := q.GetByID(ctx, user.Actor{ID: uuid.New(), Role: user.RolePlayer}, c.ID())

		assert.True(t, errs.Is(err, errs.ErrCreditNotFound))
	})
}

func TestCreditListByPlayer(t *testing.T) {
	ctx := context.Background()
	player := user.Actor{ID: uuid.New(), Role: user.RolePlayer}

	ctrl := gomock.NewController(t)
	f := newFixture(t)
	due := f.availableCredit(player.ID, issued.Add(time.Hour))
	fresh := f.availableCredit(player.ID, issued.Add(30*24*time.Hour))
	f.availableCredit(uuid.New(), issued.Add(30*24*time.Hour))

	// Listing never writes; the expirer has no expectations.
	q := queries.NewCreditQueries(f.store, queriesmock.NewMockCreditExpirer(ctrl), clock.NewMockClock(issued.Add(2*time.Hour)))

	t.Run("本人のクレジットだけを期限込みで返す", func(t *testing.T) {
		views, err := q.ListByPlayer(ctx, player, nil)
		require.NoError(t, err)
		require.Len(t, views, 2)

		statuses := map[uuid.UUID]string{}
		for _, v := range views {
			statuses[v.ID] = v.Status
		}
		assert.Equal(t, "EXPIRED", statuses[due.ID()])
		assert.Equal(t, "AVAILABLE", statuses[fresh.ID()])

		stored, _ := f.store.Credit(due.ID())
		assert.Equal(t, credit.StatusAvailable, stored.Status())
	})

	t.Run("会場で絞り込む", func(t *testing.T) {
		other := uuid.New()
		views, err := q.ListByPlayer(ctx, player, &other)
		require.NoError(t, err)
		assert.Empty(t, views)

		views, err = q.ListByPlayer(ctx, player, &f.venue.ID)
		require.NoError(t, err)
		assert.Len(t, views, 2)
	})
}
