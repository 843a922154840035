package queries

import (
	"context"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/user"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewReservationQueries(uow shared.UnitOfWork) ReservationQueries {
	return &reservationQueriesImpl{uow: uow}
}

// GetByID is visible to the player, the venue owner and admins.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationView, error) {
	var view *ReservationView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		res, err := r.ReservationByID(ctx, id)
		if err != nil {
			return notFoundAs(err, errs.ErrReservationNotFound)
		}
		if actor.ID != res.PlayerID() && !actor.IsAdmin() {
			v, verr := r.VenueByID(ctx, res.VenueID())
			if verr != nil {
				return notFoundAs(verr, errs.ErrVenueNotFound)
			}
			if !actor.CanOperateVenue(v.OwnerID) {
				// Hide existence from unrelated callers.
				return errs.ErrReservationNotFound
			}
		}
		view = NewReservationView(res)
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return view, nil
}
