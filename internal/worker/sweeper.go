package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/pkg/clock"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/config"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/commands"

	"go.opentelemetry.io/otel/codes"
)

const defaultSweepInterval = time.Minute

// CreditSweeper resolves pending credits once their notice window has passed,
// expires stale available credits and purges old idempotency keys.
type CreditSweeper struct {
	cmds     commands.CreditCommands
	clock    clock.Clock
	interval time.Duration
}

func NewCreditSweeper(cmds commands.CreditCommands, clk clock.Clock, cfg config.WorkerConfig) *CreditSweeper {
	interval := cfg.SweepInterval
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &CreditSweeper{cmds: cmds, clock: clk, interval: interval}
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (s *CreditSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if err := s.SweepOnce(ctx); err != nil && ctx.Err() == nil {
			slog.Error("credit sweep failed", "error", err.Error())
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// SweepOnce runs every step even when an earlier one fails and returns the
// first error.
func (s *CreditSweeper) SweepOnce(ctx context.Context) (first error) {
	ctx, span := tracer.Start(ctx, "credits.sweep")
	defer func() {
		if first != nil {
			span.RecordError(first)
			span.SetStatus(codes.Error, "sweep failed")
		}
		span.End()
	}()

	now := s.clock.Now()

	if _, err := s.cmds.ResolvePending(ctx, now); err != nil {
		first = errs.Wrap(err, "resolve pending credits")
	}
	if _, err := s.cmds.ExpireAvailable(ctx, now); err != nil && first == nil {
		first = errs.Wrap(err, "expire credits")
	}
	if stats, err := s.cmds.PurgeIdempotencyKeys(ctx, now); err != nil {
		if first == nil {
			first = errs.Wrap(err, "purge idempotency keys")
		}
	} else if stats.Purged > 0 {
		slog.Debug("idempotency keys purged", "count", stats.Purged)
	}
	return first
}
