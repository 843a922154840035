package bootstrap

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Arielcito/rcfapp-sub002/internal/pkg/clock"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/config"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/shared"
	"github.com/Arielcito/rcfapp-sub002/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewCreditSweeper,
	),
	fx.Invoke(startWorkers),
)

type workerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Sweeper   *worker.CreditSweeper
	UoW       shared.UnitOfWork
	Clock     clock.Clock
	WorkerCfg config.WorkerConfig
	KafkaCfg  config.KafkaConfig
	Logger    *slog.Logger
}

func startWorkers(p workerParams) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				p.Sweeper.Run(ctx)
			}()
			p.Logger.Info("クレジット掃除ワーカーを起動しました", "interval", p.WorkerCfg.SweepInterval)

			if len(p.KafkaCfg.Brokers) == 0 {
				p.Logger.Info("Kafkaが未設定のためアウトボックス配信を無効化します")
				return nil
			}
			writer := worker.NewKafkaWriter(p.KafkaCfg)
			publisher := worker.NewOutboxPublisher(p.UoW, writer, p.Clock, p.WorkerCfg, p.KafkaCfg)
			wg.Add(1)
			go func() {
				defer wg.Done()
				publisher.Run(ctx)
				if err := writer.Close(); err != nil {
					p.Logger.Error("Kafkaライターのクローズに失敗しました", "error", err)
				}
			}()
			p.Logger.Info("アウトボックス配信ワーカーを起動しました", "brokers", p.KafkaCfg.Brokers)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
