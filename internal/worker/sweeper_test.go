//go:build unit

package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/pkg/clock"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/config"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/commands"
	"github.com/Arielcito/rcfapp-sub002/internal/worker"
	commandsmock "github.com/Arielcito/rcfapp-sub002/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCreditSweeperSweepOnce(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.March, 12, 21, 0, 0, 0, time.UTC)
	cfg := config.WorkerConfig{SweepInterval: time.Minute}

	t.Run("全ステップを現在時刻で実行する", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmds := commandsmock.NewMockCreditCommands(ctrl)
		gomock.InOrder(
			cmds.EXPECT().ResolvePending(gomock.Any(), now).Return(commands.SweepStats{Resolved: 1, Forfeited: 2}, nil),
			cmds.EXPECT().ExpireAvailable(gomock.Any(), now).Return(commands.SweepStats{Expired: 3}, nil),
			cmds.EXPECT().PurgeIdempotencyKeys(gomock.Any(), now).Return(commands.SweepStats{Purged: 4}, nil),
		)

		err := worker.NewCreditSweeper(cmds, clock.NewMockClock(now), cfg).SweepOnce(ctx)

		assert.NoError(t, err)
	})

	t.Run("失敗しても残りを実行し最初のエラーを返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmds := commandsmock.NewMockCreditCommands(ctrl)
		resolveErr := errors.New("resolve failed")
		cmds.EXPECT().ResolvePending(gomock.Any(), now).Return(commands.SweepStats{}, resolveErr)
		cmds.EXPECT().ExpireAvailable(gomock.Any(), now).Return(commands.SweepStats{}, errors.New("expire failed"))
		cmds.EXPECT().PurgeIdempotencyKeys(gomock.Any(), now).Return(commands.SweepStats{}, nil)

		err := worker.NewCreditSweeper(cmds, clock.NewMockClock(now), cfg).SweepOnce(ctx)

		assert.ErrorIs(t, err, resolveErr)
		assert.Contains(t, err.Error(), "resolve pending credits")
	})

	t.Run("後段だけの失敗も返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmds := commandsmock.NewMockCreditCommands(ctrl)
		purgeErr := errors.New("purge failed")
		cmds.EXPECT().ResolvePending(gomock.Any(), now).Return(commands.SweepStats{}, nil)
		cmds.EXPECT().ExpireAvailable(gomock.Any(), now).Return(commands.SweepStats{}, nil)
		cmds.EXPECT().PurgeIdempotencyKeys(gomock.Any(), now).Return(commands.SweepStats{}, purgeErr)

		err := worker.NewCreditSweeper(cmds, clock.NewMockClock(now), cfg).SweepOnce(ctx)

		assert.ErrorIs(t, err, purgeErr)
	})
}

func TestCreditSweeperRun(t *testing.T) {
	now := time.Date(2025, time.March, 12, 21, 0, 0, 0, time.UTC)
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockCreditCommands(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	// The first sweep runs before the first tick; cancelling there stops Run.
	cmds.EXPECT().ResolvePending(gomock.Any(), now).Return(commands.SweepStats{}, nil)
	cmds.EXPECT().ExpireAvailable(gomock.Any(), now).Return(commands.SweepStats{}, nil)
	cmds.EXPECT().PurgeIdempotencyKeys(gomock.Any(), now).DoAndReturn(func(context.Context, time.Time) (commands.SweepStats, error) {
		cancel()
		return commands.SweepStats{}, nil
	})

	done := make(chan struct{})
	go func() {
		worker.NewCreditSweeper(cmds, clock.NewMockClock(now), config.WorkerConfig{SweepInterval: time.Hour}).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}
