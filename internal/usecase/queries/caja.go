package queries

import (
	"context"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/ledger"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/user"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/clock"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidRange = errs.New("from must not be after to")

type CajaQueries interface {
	// Report covers movements with from <= occurred_at <= to.
	Report(ctx context.Context, actor user.Actor, venueID uuid.UUID, from, to time.Time) (*CajaReport, error)
	// ReportDays covers whole local days of the venue, both ends included.
	ReportDays(ctx context.Context, actor user.Actor, venueID uuid.UUID, from, to clock.Date) (*CajaReport, error)
}

type cajaQueriesImpl struct {
	uow   shared.UnitOfWork
	zones *clock.ZoneProvider
}

func NewCajaQueries(uow shared.UnitOfWork, zones *clock.ZoneProvider) CajaQueries {
	return &cajaQueriesImpl{uow: uow, zones: zones}
}

func (q *cajaQueriesImpl) Report(ctx context.Context, actor user.Actor, venueID uuid.UUID, from, to time.Time) (*CajaReport, error) {
	if from.After(to) {
		return nil, ErrInvalidRange
	}
	var report *CajaReport
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		v, err := r.VenueByID(ctx, venueID)
		if err != nil {
			return notFoundAs(err, errs.ErrVenueNotFound)
		}
		if !actor.CanOperateVenue(v.OwnerID) {
			return errs.ErrForbidden
		}
		report, err = q.build(ctx, r, venueID, from, to)
		return err
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return report, nil
}

func (q *cajaQueriesImpl) ReportDays(ctx context.Context, actor user.Actor, venueID uuid.UUID, from, to clock.Date) (*CajaReport, error) {
	var report *CajaReport
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		v, err := r.VenueByID(ctx, venueID)
		if err != nil {
			return notFoundAs(err, errs.ErrVenueNotFound)
		}
		if !actor.CanOperateVenue(v.OwnerID) {
			return errs.ErrForbidden
		}
		loc, err := q.zones.Location(v.TimeZone)
		if err != nil {
			return err
		}

		start := from.At(loc, 0)
		// Last instant of the to-day; the range is inclusive on both ends.
		end := to.AddDays(1).At(loc, 0).Add(-time.Microsecond)
		if start.After(end) {
			return ErrInvalidRange
		}
		report, err = q.build(ctx, r, venueID, start, end)
		return err
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return report, nil
}

func (q *cajaQueriesImpl) build(ctx context.Context, r shared.Reads, venueID uuid.UUID, from, to time.Time) (*CajaReport, error) {
	movements, err := r.Movements(ctx, venueID, from, to)
	if err != nil {
		return nil, err
	}

	entries := make([]ledger.Entry, len(movements))
	views := make([]*MovementView, len(movements))
	for i, m := range movements {
		entries[i] = ledger.EntryOf(m)
		views[i] = NewMovementView(m)
	}
	summary := ledger.Summarize(entries)

	byMethod := make(map[string]TotalsView, len(summary.ByMethod))
	for method, t := range summary.ByMethod {
		byMethod[string(method)] = totalsView(t)
	}

	return &CajaReport{
		VenueID:   venueID,
		From:      from,
		To:        to,
		Movements: views,
		Totals:    totalsView(summary.Totals),
		ByMethod:  byMethod,
	}, nil
}

func totalsView(t ledger.Totals) TotalsView {
	return TotalsView{IncomeCents: t.IncomeCents, ExpenseCents: t.ExpenseCents, NetCents: t.NetCents}
}
