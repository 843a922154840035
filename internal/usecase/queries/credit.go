package queries

import (
	"context"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/credit"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/user"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/clock"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/shared"

	"github.com/google/uuid"
)

// CreditExpirer persists a due expiry. The credit commands implement it.
type CreditExpirer interface {
	ExpireIfDue(ctx context.Context, creditID uuid.UUID) (*credit.Credit, error)
}

type CreditQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*CreditView, error)
	// ListByPlayer lists the actor's own credits, optionally for one venue.
	ListByPlayer(ctx context.Context, actor user.Actor, venueID *uuid.UUID) ([]*CreditView, error)
}

type creditQueriesImpl struct {
	uow     shared.UnitOfWork
	expirer CreditExpirer
	clock   clock.Clock
}

func NewCreditQueries(uow shared.UnitOfWork, expirer CreditExpirer, clk clock.Clock) CreditQueries {
	return &creditQueriesImpl{uow: uow, expirer: expirer, clock: clk}
}

func (q *creditQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*CreditView, error) {
	reads := q.uow.Reads()
	cr, err := reads.CreditByID(ctx, id)
	if err != nil {
		return nil, storageErr(notFoundAs(err, errs.ErrCreditNotFound))
	}
	if actor.ID != cr.PlayerID() && !actor.IsAdmin() {
		v, verr := reads.VenueByID(ctx, cr.VenueID())
		if verr != nil {
			return nil, storageErr(notFoundAs(verr, errs.ErrVenueNotFound))
		}
		if !actor.CanOperateVenue(v.OwnerID) {
			return nil, errs.ErrCreditNotFound
		}
	}

	now := q.clock.Now()
	if cr.IsDue(now) {
		if cr, err = q.expirer.ExpireIfDue(ctx, id); err != nil {
			return nil, err
		}
	}
	return NewCreditView(cr, now), nil
}

func (q *creditQueriesImpl) ListByPlayer(ctx context.Context, actor user.Actor, venueID *uuid.UUID) ([]*CreditView, error) {
	credits, err := q.uow.Reads().CreditsByPlayer(ctx, actor.ID, venueID)
	if err != nil {
		return nil, storageErr(err)
	}

	now := q.clock.Now()
	views := make([]*CreditView, len(credits))
	for i, c := range credits {
		views[i] = NewCreditView(c, now)
	}
	return views, nil
}
