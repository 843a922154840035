package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/pkg/clock"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/config"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	defaultOutboxInterval = 2 * time.Second
	defaultOutboxBatch    = 100
	maxErrorLength        = 500
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// OutboxPublisher drains outbox_events to Kafka. Rows are locked with SKIP
// LOCKED so several instances can run side by side; delivery is at least once.
type OutboxPublisher struct {
	uow         shared.UnitOfWork
	writer      MessageWriter
	clock       clock.Clock
	topicPrefix string
	interval    time.Duration
	batchSize   int
}

func NewOutboxPublisher(uow shared.UnitOfWork, writer MessageWriter, clk clock.Clock, workerCfg config.WorkerConfig, kafkaCfg config.KafkaConfig) *OutboxPublisher {
	interval := workerCfg.OutboxPollInterval
	if interval <= 0 {
		interval = defaultOutboxInterval
	}
	batch := workerCfg.OutboxBatchSize
	if batch <= 0 {
		batch = defaultOutboxBatch
	}
	return &OutboxPublisher{
		uow:         uow,
		writer:      writer,
		clock:       clk,
		topicPrefix: kafkaCfg.TopicPrefix,
		interval:    interval,
		batchSize:   batch,
	}
}

func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

func (p *OutboxPublisher) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Keep draining while full batches come back.
			for {
				n, err := p.PublishBatch(ctx)
				if err != nil {
					if ctx.Err() == nil {
						slog.Error("outbox publish failed", "error", err.Error())
					}
					break
				}
				if n < p.batchSize {
					break
				}
			}
		}
	}
}

// PublishBatch sends one batch and reports how many events it handled. A
// failed write records the attempt on every row of the batch and is not
// returned as an error.
func (p *OutboxPublisher) PublishBatch(ctx context.Context) (int, error) {
	ctx, span := tracer.Start(ctx, "outbox.publish_batch")
	defer span.End()

	var handled int
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		handled = 0
		events, err := tx.Outbox().ListUnpublishedForUpdate(ctx, tx.DB(), p.batchSize)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			return nil
		}

		msgs := make([]kafka.Message, len(events))
		for i, ev := range events {
			msgs[i] = p.message(ev)
		}

		if werr := p.writer.WriteMessages(ctx, msgs...); werr != nil {
			slog.Warn("kafka write failed", "events", len(events), "error", werr.Error())
			reason := truncate(werr.Error(), maxErrorLength)
			for _, ev := range events {
				if err := tx.Outbox().MarkFailed(ctx, tx.DB(), ev.ID, reason); err != nil {
					return err
				}
			}
			return nil
		}

		now := p.clock.Now()
		for _, ev := range events {
			if err := tx.Outbox().MarkPublished(ctx, tx.DB(), ev.ID, now); err != nil {
				return err
			}
		}
		handled = len(events)
		return nil
	})
	span.SetAttributes(attribute.Int("outbox.published", handled))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "publish batch failed")
	}
	return handled, err
}

// message routes by aggregate type and keys by aggregate id, so all events of
// one reservation or credit land on one partition in order.
func (p *OutboxPublisher) message(ev shared.OutboxEvent) kafka.Message {
	return kafka.Message{
		Topic: p.topicPrefix + ev.AggregateType,
		Key:   []byte(ev.AggregateID.String()),
		Value: ev.Payload,
		Time:  ev.CreatedAt,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(ev.ID.String())},
			{Key: "event_type", Value: []byte(ev.EventType)},
			{Key: "aggregate_type", Value: []byte(ev.AggregateType)},
		},
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
