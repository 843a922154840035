package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Arielcito/rcfapp-sub002/internal/infra/db"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/config"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// requiredTables must exist before the engine accepts bookings; the slot
// exclusion constraint lives on reservations.
var requiredTables = []string{
	"venues", "courts", "reservations", "credits",
	"ledger_movements", "idempotency_keys", "outbox_events",
}

func NewDB(lc fx.Lifecycle, cfg config.DBConfig) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := CheckSchema(ctx, pool); err != nil {
				return err
			}
			slog.Info("database ready", "database", cfg.DBName, "max_conns", pool.Config().MaxConns)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}

// CheckSchema fails fast when migrations have not been applied.
func CheckSchema(ctx context.Context, pool *pgxpool.Pool) error {
	var missing []string
	err := pool.QueryRow(ctx, `
		SELECT coalesce(array_agg(t), '{}')
		FROM unnest($1::text[]) AS t
		WHERE to_regclass('public.' || t) IS NULL`, requiredTables).Scan(&missing)
	if err != nil {
		return errs.Wrap(err, "failed to inspect schema")
	}
	if len(missing) > 0 {
		return errs.Newf("schema not migrated, missing tables: %v", missing)
	}
	return nil
}
