//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/reservation"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/user"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationGetByID(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, time.March, 12, 23, 0, 0, 0, time.UTC)

	f := newFixture(t)
	player := user.Actor{ID: uuid.New(), Role: user.RolePlayer}
	res := f.book(player.ID, start, 90*time.Minute, reservation.StatusDepositPaid)
	q := queries.NewReservationQueries(f.store)

	tests := []struct {
		name    string
		actor   user.Actor
		wantErr error
	}{
		{name: "本人", actor: player},
		{name: "会場のオーナー", actor: f.owner},
		{name: "管理者", actor: user.Actor{ID: uuid.New(), Role: user.RoleAdmin}},
		{name: "他の選手には存在を隠す", actor: user.Actor{ID: uuid.New(), Role: user.RolePlayer}, wantErr: errs.ErrReservationNotFound},
		{name: "他の会場のオーナー", actor: user.Actor{ID: uuid.New(), Role: user.RoleOwner}, wantErr: errs.ErrReservationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := q.GetByID(ctx, tt.actor, res.ID())

			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr))
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, res.ID(), view.ID)
			assert.Equal(t, 90, view.DurationMinutes)
			assert.Equal(t, "DEPOSIT_PAID", view.Status)
			assert.Equal(t, int64(0), view.DepositDueCents)
			assert.Equal(t, int64(7000), view.BalanceDueCents)
		})
	}

	t.Run("存在しない予約", func(t *testing.T) {
		_, err := q.GetByID(ctx, player, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrReservationNotFound))
	})
}
