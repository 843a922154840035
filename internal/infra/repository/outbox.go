package repository

import (
	"context"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/infra"
	sqlc "github.com/Arielcito/rcfapp-sub002/internal/infra/sqlc/generated"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/pgconv"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OutboxWriteQueries interface {
	CreateOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOutboxEventParams) error
	ListUnpublishedOutboxEventsForUpdate(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListUnpublishedOutboxEventsForUpdateRow, error)
	MarkOutboxEventPublished(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventPublishedParams) error
	MarkOutboxEventFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventFailedParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, ev shared.NewOutboxEvent) error {
	params := sqlc.CreateOutboxEventParams{
		AggregateType: ev.AggregateType,
		AggregateID:   ev.AggregateID,
		EventType:     ev.EventType,
		Payload:       ev.Payload,
		CreatedAt:     pgconv.TimeToPgtype(ev.At),
	}

	if err := r.queries.CreateOutboxEvent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create outbox event", err)
	}

	return nil
}

func (r *OutboxRepository) ListUnpublishedForUpdate(ctx context.Context, tx sqlc.DBTX, limit int) ([]shared.OutboxEvent, error) {
	rows, err := r.queries.ListUnpublishedOutboxEventsForUpdate(ctx, tx, int32(limit)) // #nosec G115 -- batch sizes come from config
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list outbox events", err)
	}

	events := make([]shared.OutboxEvent, len(rows))
	for i, row := range rows {
		events[i] = shared.OutboxEvent{
			ID:            row.ID,
			AggregateType: row.AggregateType,
			AggregateID:   row.AggregateID,
			EventType:     row.EventType,
			Payload:       row.Payload,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
			Attempts:      int(row.Attempts),
		}
	}
	return events, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error {
	params := sqlc.MarkOutboxEventPublishedParams{
		ID:          id,
		PublishedAt: pgconv.TimeToPgtype(at),
	}
	if err := r.queries.MarkOutboxEventPublished(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event published", err)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, reason string) error {
	params := sqlc.MarkOutboxEventFailedParams{
		ID:        id,
		LastError: pgtype.Text{String: reason, Valid: reason != ""},
	}
	if err := r.queries.MarkOutboxEventFailed(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event failed", err)
	}
	return nil
}
