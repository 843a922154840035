package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Arielcito/rcfapp-sub002/internal/pkg/config"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/telemetry"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(registerTelemetry),
)

func registerTelemetry(lc fx.Lifecycle, cfg config.OtelConfig, logger *slog.Logger) {
	var shutdown telemetry.ShutdownFunc
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			shutdown, err = telemetry.Setup(ctx, cfg)
			if err != nil {
				return err
			}
			if cfg.Enabled {
				logger.Info("トレーシングを有効化しました", "endpoint", cfg.OTLPEndpoint)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if shutdown == nil {
				return nil
			}
			return shutdown(ctx)
		},
	})
}
