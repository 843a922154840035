package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/credit"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/ledger"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/reservation"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/user"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/clock"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/config"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/shared"

	"github.com/google/uuid"
)

const defaultSweepBatchSize = 50

// SweepStats counts what one sweep changed.
type SweepStats struct {
	Resolved  int
	Forfeited int
	Expired   int
	Purged    int64
}

type CreditCommands interface {
	ConsumeCredit(ctx context.Context, actor user.Actor, creditID, reservationID uuid.UUID) (*ledger.Movement, error)
	// ExpireIfDue persists the lazy expiry of one credit and returns its current state.
	ExpireIfDue(ctx context.Context, creditID uuid.UUID) (*credit.Credit, error)
	ResolvePending(ctx context.Context, now time.Time) (SweepStats, error)
	ExpireAvailable(ctx context.Context, now time.Time) (SweepStats, error)
	PurgeIdempotencyKeys(ctx context.Context, now time.Time) (SweepStats, error)
}

type creditUseCaseImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	policy    credit.Policy
	batchSize int
}

func NewCreditUseCase(uow shared.UnitOfWork, clk clock.Clock, booking config.BookingConfig, worker config.WorkerConfig) CreditCommands {
	batch := worker.SweepBatchSize
	if batch <= 0 {
		batch = defaultSweepBatchSize
	}
	return &creditUseCaseImpl{
		uow:       uow,
		clock:     clk,
		policy:    PolicyFromConfig(booking),
		batchSize: batch,
	}
}

// ConsumeCredit applies an available credit to a reservation still waiting for
// its deposit. A credit found past its expiry is expired and committed before
// the call fails.
func (uc *creditUseCaseImpl) ConsumeCredit(ctx context.Context, actor user.Actor, creditID, reservationID uuid.UUID) (*ledger.Movement, error) {
	var (
		movement *ledger.Movement
		expired  bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		movement, expired = nil, false
		now := uc.clock.Now()

		cr, err := tx.Credits().FindForUpdate(ctx, tx.DB(), creditID)
		if err != nil {
			return lookupErr(err, errs.ErrCreditNotFound)
		}
		if cr.ExpireIfDue(now) {
			expired = true
			return uc.persistExpiry(ctx, tx, cr, now)
		}

		res, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), reservationID)
		if err != nil {
			return lookupErr(err, errs.ErrReservationNotFound)
		}
		v, err := tx.Reads().VenueByID(ctx, res.VenueID())
		if err != nil {
			return lookupErr(err, errs.ErrVenueNotFound)
		}
		if !actor.CanActFor(cr.PlayerID(), v.OwnerID) {
			return errs.ErrForbidden
		}

		if err = cr.Consume(res.ID()); err != nil {
			return err
		}
		if !cr.CanFund(res.PlayerID(), res.VenueID()) {
			return errs.ErrCreditMismatch
		}
		if err = res.ApplyCredit(cr.ID(), cr.AmountCents()); err != nil {
			return err
		}

		if err = tx.Credits().Update(ctx, tx.DB(), cr); err != nil {
			return err
		}
		if err = tx.Reservations().UpdatePayment(ctx, tx.DB(), res); err != nil {
			return err
		}

		resID := res.ID()
		m := ledger.NewCreditAdjustment(res.VenueID(), cr.ID(), &resID, cr.AmountCents(), "credit applied to reservation", now)
		if err = tx.Ledger().Append(ctx, tx.DB(), m); err != nil {
			return err
		}
		movement = m
		return enqueue(ctx, tx, AggregateCredit, cr.ID(), EventCreditConsumed, creditPayload(cr), now)
	})
	if err != nil {
		return nil, storageErr(err)
	}
	if expired {
		return nil, errs.Wrap(errs.ErrCreditNotAvailable, "credit expired")
	}
	return movement, nil
}

func (uc *creditUseCaseImpl) ExpireIfDue(ctx context.Context, creditID uuid.UUID) (*credit.Credit, error) {
	var result *credit.Credit
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cr, err := tx.Credits().FindForUpdate(ctx, tx.DB(), creditID)
		if err != nil {
			return lookupErr(err, errs.ErrCreditNotFound)
		}
		result = cr
		now := uc.clock.Now()
		if !cr.ExpireIfDue(now) {
			return nil
		}
		return uc.persistExpiry(ctx, tx, cr, now)
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return result, nil
}

// persistExpiry releases the liability recorded when the credit became available.
func (uc *creditUseCaseImpl) persistExpiry(ctx context.Context, tx shared.Tx, cr *credit.Credit, now time.Time) error {
	if err := tx.Credits().Update(ctx, tx.DB(), cr); err != nil {
		return err
	}
	m := ledger.NewCreditAdjustment(cr.VenueID(), cr.ID(), nil, cr.AmountCents(), "credit expired", now)
	if err := tx.Ledger().Append(ctx, tx.DB(), m); err != nil {
		return err
	}
	return enqueue(ctx, tx, AggregateCredit, cr.ID(), EventCreditExpired, creditPayload(cr), now)
}

// ResolvePending settles credits from late cancellations. Each batch commits on
// its own so a long backlog never holds locks for the whole sweep.
func (uc *creditUseCaseImpl) ResolvePending(ctx context.Context, now time.Time) (SweepStats, error) {
	var (
		stats  SweepStats
		cursor shared.PendingCursor
	)
	for {
		var (
			batch int
			next  shared.PendingCursor
			delta SweepStats
		)
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			batch, next, delta = 0, cursor, SweepStats{}

			credits, err := tx.Credits().ListPendingForUpdate(ctx, tx.DB(), cursor, uc.batchSize)
			if err != nil {
				return err
			}
			batch = len(credits)

			for _, cr := range credits {
				next = shared.PendingCursor{ResolveAfter: resolveAfterOf(cr), ID: cr.ID()}

				rebooked, rerr := uc.rebooked(ctx, tx, cr)
				if rerr != nil {
					return rerr
				}
				if !uc.policy.Resolve(cr, now, rebooked) {
					continue
				}
				if err = tx.Credits().Update(ctx, tx.DB(), cr); err != nil {
					return err
				}

				if cr.Status() == credit.StatusAvailable {
					sourceID := cr.SourceReservationID()
					m := ledger.NewCreditAdjustment(cr.VenueID(), cr.ID(), &sourceID, -cr.AmountCents(), "credit released after rebooking", now)
					if err = tx.Ledger().Append(ctx, tx.DB(), m); err != nil {
						return err
					}
					delta.Resolved++
				} else {
					delta.Forfeited++
				}
				if err = enqueue(ctx, tx, AggregateCredit, cr.ID(), EventCreditResolved, creditPayload(cr), now); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return stats, storageErr(err)
		}

		stats.Resolved += delta.Resolved
		stats.Forfeited += delta.Forfeited
		cursor = next
		if batch < uc.batchSize {
			break
		}
	}

	if stats.Resolved > 0 || stats.Forfeited > 0 {
		slog.Info("pending credits resolved", "available", stats.Resolved, "forfeited", stats.Forfeited)
	}
	return stats, nil
}

// rebooked reports whether the freed interval was fully taken again after the
// cancellation and before the original start.
func (uc *creditUseCaseImpl) rebooked(ctx context.Context, tx shared.Tx, cr *credit.Credit) (bool, error) {
	source, err := tx.Reads().ReservationByID(ctx, cr.SourceReservationID())
	if err != nil {
		return false, lookupErr(err, errs.ErrReservationNotFound)
	}

	from := cr.IssuedAt()
	if at := source.CancelledAt(); at != nil {
		from = *at
	}
	parts, err := tx.Reads().Rebookings(ctx, shared.RebookingQuery{
		CourtID:       source.CourtID(),
		Interval:      source.Interval(),
		ExcludeID:     source.ID(),
		CreatedFrom:   from,
		CreatedBefore: source.Start(),
	})
	if err != nil {
		return false, err
	}
	return reservation.Covers(source.Interval(), parts), nil
}

func (uc *creditUseCaseImpl) ExpireAvailable(ctx context.Context, now time.Time) (SweepStats, error) {
	var stats SweepStats
	for {
		var batch, expired int
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			batch, expired = 0, 0

			credits, err := tx.Credits().ListExpiredForUpdate(ctx, tx.DB(), now, uc.batchSize)
			if err != nil {
				return err
			}
			batch = len(credits)

			for _, cr := range credits {
				if !cr.ExpireIfDue(now) {
					continue
				}
				if err = uc.persistExpiry(ctx, tx, cr, now); err != nil {
					return err
				}
				expired++
			}
			return nil
		})
		if err != nil {
			return stats, storageErr(err)
		}

		stats.Expired += expired
		// Expired rows leave the AVAILABLE set, so the next query starts over.
		if batch < uc.batchSize || expired == 0 {
			break
		}
	}

	if stats.Expired > 0 {
		slog.Info("credits expired", "count", stats.Expired)
	}
	return stats, nil
}

func (uc *creditUseCaseImpl) PurgeIdempotencyKeys(ctx context.Context, now time.Time) (SweepStats, error) {
	var stats SweepStats
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Idempotency().DeleteExpired(ctx, tx.DB(), now)
		stats.Purged = n
		return err
	})
	if err != nil {
		return stats, storageErr(err)
	}
	return stats, nil
}

func resolveAfterOf(cr *credit.Credit) time.Time {
	if at := cr.ResolveAfter(); at != nil {
		return *at
	}
	return cr.IssuedAt()
}
