package queries

import (
	"context"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/reservation"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/clock"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotQueries interface {
	ListSlots(ctx context.Context, courtID uuid.UUID, date clock.Date) (*SlotListing, error)
}

type slotQueriesImpl struct {
	uow   shared.UnitOfWork
	zones *clock.ZoneProvider
}

func NewSlotQueries(uow shared.UnitOfWork, zones *clock.ZoneProvider) SlotQueries {
	return &slotQueriesImpl{uow: uow, zones: zones}
}

// ListSlots reads the court's bookings for date once and returns a sequence
// labeling every slot between opening and closing.
func (q *slotQueriesImpl) ListSlots(ctx context.Context, courtID uuid.UUID, date clock.Date) (*SlotListing, error) {
	var listing *SlotListing
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		court, err := r.CourtByID(ctx, courtID)
		if err != nil {
			return notFoundAs(err, errs.ErrCourtNotFound)
		}
		if !court.Active {
			return errs.ErrCourtInactive
		}
		v, err := r.VenueByID(ctx, court.VenueID)
		if err != nil {
			return notFoundAs(err, errs.ErrVenueNotFound)
		}
		loc, err := q.zones.Location(v.TimeZone)
		if err != nil {
			return err
		}

		opening, closing := v.Hours.Window(date, loc)
		window := reservation.Interval{Start: opening, End: closing}
		booked, err := r.ActiveReservations(ctx, courtID, window)
		if err != nil {
			return err
		}

		listing = &SlotListing{
			CourtID:  courtID,
			Date:     date,
			TimeZone: v.TimeZone,
			Slots:    reservation.Slots(window, court.SlotDuration(), booked),
		}
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return listing, nil
}
