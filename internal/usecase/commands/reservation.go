package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/credit"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/ledger"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/reservation"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/user"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/venue"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/clock"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/config"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/shared"

	"github.com/google/uuid"
)

var errIdempotencyWithoutResult = errs.New("idempotency key has no reservation")

type ReserveInput struct {
	CourtID uuid.UUID
	// PlayerID defaults to the actor. Venue owners may book for a player.
	PlayerID        uuid.UUID
	Start           time.Time
	DurationMinutes int
	DepositRequired bool
	IdempotencyKey  *uuid.UUID
}

type ReserveResult struct {
	Reservation *reservation.Reservation
	IsReplayed  bool
}

type ReservationCommands interface {
	Reserve(ctx context.Context, actor user.Actor, in ReserveInput) (*ReserveResult, error)
	MarkPaid(ctx context.Context, reservationID uuid.UUID, method ledger.Method) (*reservation.Reservation, error)
	MarkCancelled(ctx context.Context, reservationID uuid.UUID, cancelledAt time.Time) (*reservation.Reservation, error)
	Cancel(ctx context.Context, actor user.Actor, reservationID uuid.UUID) (*reservation.Reservation, error)
	SettleBalance(ctx context.Context, actor user.Actor, reservationID uuid.UUID, method ledger.Method) (*reservation.Reservation, error)
}

type reservationUseCaseImpl struct {
	uow            shared.UnitOfWork
	clock          clock.Clock
	zones          *clock.ZoneProvider
	policy         credit.Policy
	idempotencyTTL time.Duration
}

func NewReservationUseCase(uow shared.UnitOfWork, clk clock.Clock, zones *clock.ZoneProvider, cfg config.BookingConfig) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:            uow,
		clock:          clk,
		zones:          zones,
		policy:         PolicyFromConfig(cfg),
		idempotencyTTL: cfg.IdempotencyTTL,
	}
}

// PolicyFromConfig falls back to the default terms for unset values.
func PolicyFromConfig(cfg config.BookingConfig) credit.Policy {
	p := credit.DefaultPolicy()
	if cfg.CancellationNotice > 0 {
		p.Notice = cfg.CancellationNotice
	}
	if cfg.CreditValidity > 0 {
		p.Validity = cfg.CreditValidity
	}
	return p
}

func (uc *reservationUseCaseImpl) Reserve(ctx context.Context, actor user.Actor, in ReserveInput) (*ReserveResult, error) {
	playerID := in.PlayerID
	if playerID == uuid.Nil {
		playerID = actor.ID
	}

	reads := uc.uow.Reads()
	court, err := reads.CourtByID(ctx, in.CourtID)
	if err != nil {
		return nil, lookupErr(err, errs.ErrCourtNotFound)
	}
	v, err := reads.VenueByID(ctx, court.VenueID)
	if err != nil {
		return nil, lookupErr(err, errs.ErrVenueNotFound)
	}
	if !actor.CanActFor(playerID, v.OwnerID) {
		return nil, errs.ErrForbidden
	}
	loc, err := uc.zones.Location(v.TimeZone)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	res, err := reservation.NewReservation(reservation.Request{
		CourtID:         in.CourtID,
		PlayerID:        playerID,
		Start:           in.Start,
		DurationMinutes: in.DurationMinutes,
		DepositRequired: in.DepositRequired,
	}, v, court, loc, now)
	if err != nil {
		return nil, err
	}

	var result *ReserveResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if in.IdempotencyKey != nil {
			replayed, ierr := uc.claimIdempotencyKey(ctx, tx, *in.IdempotencyKey, actor.ID, requestHash(playerID, in), now)
			if ierr != nil {
				return ierr
			}
			if replayed != nil {
				result = &ReserveResult{Reservation: replayed, IsReplayed: true}
				return nil
			}
		}

		if _, cerr := tx.Reservations().Create(ctx, tx.DB(), res); cerr != nil {
			return storageErr(cerr)
		}
		if in.IdempotencyKey != nil {
			if aerr := tx.Idempotency().AttachReservation(ctx, tx.DB(), *in.IdempotencyKey, actor.ID, res.ID()); aerr != nil {
				return aerr
			}
		}
		if eerr := enqueue(ctx, tx, AggregateReservation, res.ID(), EventReservationCreated, reservationPayload(res), now); eerr != nil {
			return eerr
		}

		result = &ReserveResult{Reservation: res}
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}

	if !result.IsReplayed {
		slog.Info("reservation created",
			"reservation_id", res.ID().String(),
			"court_id", res.CourtID().String(),
			"status", res.Status().String())
	}
	return result, nil
}

// claimIdempotencyKey returns the earlier reservation when the key was already used
// for the same request.
func (uc *reservationUseCaseImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	hash string,
	now time.Time,
) (*reservation.Reservation, error) {
	claimed, err := tx.Idempotency().Claim(ctx, tx.DB(), key, userID, hash, now, now.Add(uc.idempotencyTTL))
	if err != nil {
		return nil, err
	}
	if claimed {
		return nil, nil
	}

	record, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, err
	}
	if record.RequestHash != hash {
		return nil, errs.ErrIdempotencyKeyReused
	}
	if record.ReservationID == nil {
		return nil, errIdempotencyWithoutResult
	}

	existing, err := tx.Reads().ReservationByID(ctx, *record.ReservationID)
	if err != nil {
		return nil, lookupErr(err, errs.ErrReservationNotFound)
	}
	return existing, nil
}

func (uc *reservationUseCaseImpl) MarkPaid(ctx context.Context, reservationID uuid.UUID, method ledger.Method) (*reservation.Reservation, error) {
	if !method.IsValid() {
		return nil, errs.Wrapf(errs.ErrInvalidMovement, "unknown method %q", method)
	}

	var result *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), reservationID)
		if err != nil {
			return lookupErr(err, errs.ErrReservationNotFound)
		}
		result = res

		changed, err := res.MarkPaid()
		if err != nil || !changed {
			return err
		}

		now := uc.clock.Now()
		if err = tx.Reservations().UpdatePayment(ctx, tx.DB(), res); err != nil {
			return err
		}
		if due := res.DepositDueCents(); due > 0 {
			m, merr := ledger.NewPaymentIncome(res.VenueID(), res.ID(), due, method, ledger.StageDeposit, now)
			if merr != nil {
				return merr
			}
			if err = tx.Ledger().Append(ctx, tx.DB(), m); err != nil {
				return err
			}
		}
		return enqueue(ctx, tx, AggregateReservation, res.ID(), EventReservationPaid, reservationPayload(res), now)
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return result, nil
}

func (uc *reservationUseCaseImpl) SettleBalance(ctx context.Context, actor user.Actor, reservationID uuid.UUID, method ledger.Method) (*reservation.Reservation, error) {
	if !method.IsValid() {
		return nil, errs.Wrapf(errs.ErrInvalidMovement, "unknown method %q", method)
	}

	var result *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), reservationID)
		if err != nil {
			return lookupErr(err, errs.ErrReservationNotFound)
		}
		result = res

		v, err := tx.Reads().VenueByID(ctx, res.VenueID())
		if err != nil {
			return lookupErr(err, errs.ErrVenueNotFound)
		}
		if !actor.CanOperateVenue(v.OwnerID) {
			return errs.ErrForbidden
		}

		switch res.Status() {
		case reservation.StatusCancelled:
			return errs.ErrReservationCancelled
		case reservation.StatusDepositPending:
			return errs.ErrDepositOutstanding
		}

		settled, err := tx.Ledger().PaymentStageRecorded(ctx, tx.DB(), res.ID(), ledger.StageBalance)
		if err != nil || settled {
			return err
		}

		due := res.BalanceDueCents()
		if due == 0 {
			return nil
		}
		now := uc.clock.Now()
		m, err := ledger.NewPaymentIncome(res.VenueID(), res.ID(), due, method, ledger.StageBalance, now)
		if err != nil {
			return err
		}
		if err = tx.Ledger().Append(ctx, tx.DB(), m); err != nil {
			return err
		}
		return enqueue(ctx, tx, AggregateReservation, res.ID(), EventReservationSettled, reservationPayload(res), now)
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return result, nil
}

func (uc *reservationUseCaseImpl) Cancel(ctx context.Context, actor user.Actor, reservationID uuid.UUID) (*reservation.Reservation, error) {
	authorize := func(res *reservation.Reservation, v venue.Venue) bool {
		return actor.CanActFor(res.PlayerID(), v.OwnerID)
	}
	return uc.cancel(ctx, reservationID, uc.clock.Now(), authorize)
}

// MarkCancelled is the payment collector's callback; it carries no actor.
func (uc *reservationUseCaseImpl) MarkCancelled(ctx context.Context, reservationID uuid.UUID, cancelledAt time.Time) (*reservation.Reservation, error) {
	if cancelledAt.IsZero() {
		cancelledAt = uc.clock.Now()
	}
	return uc.cancel(ctx, reservationID, cancelledAt, nil)
}

// cancel flips the reservation, issues the credit a paid deposit earns and
// records its ledger effect in one transaction.
func (uc *reservationUseCaseImpl) cancel(
	ctx context.Context,
	reservationID uuid.UUID,
	at time.Time,
	authorize func(*reservation.Reservation, venue.Venue) bool,
) (*reservation.Reservation, error) {
	var result *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), reservationID)
		if err != nil {
			return lookupErr(err, errs.ErrReservationNotFound)
		}
		result = res

		if authorize != nil {
			v, verr := tx.Reads().VenueByID(ctx, res.VenueID())
			if verr != nil {
				return lookupErr(verr, errs.ErrVenueNotFound)
			}
			if !authorize(res, v) {
				return errs.ErrForbidden
			}
		}

		prev, changed := res.Cancel(at)
		if !changed {
			return nil
		}
		if err = tx.Reservations().UpdatePayment(ctx, tx.DB(), res); err != nil {
			return err
		}

		now := uc.clock.Now()
		if prev == reservation.StatusDepositPaid && res.Quote().DepositCents > 0 {
			if err = uc.issueCredit(ctx, tx, res, at, now); err != nil {
				return err
			}
		}
		return enqueue(ctx, tx, AggregateReservation, res.ID(), EventReservationCancelled, reservationPayload(res), now)
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return result, nil
}

func (uc *reservationUseCaseImpl) issueCredit(ctx context.Context, tx shared.Tx, res *reservation.Reservation, at, now time.Time) error {
	cr := uc.policy.Issue(credit.Cancellation{
		ReservationID:  res.ID(),
		PlayerID:       res.PlayerID(),
		VenueID:        res.VenueID(),
		Start:          res.Start(),
		AmountCents:    res.Quote().DepositCents,
		FundedByCredit: res.FundedByCredit(),
		CancelledAt:    at,
	})
	if err := tx.Credits().Create(ctx, tx.DB(), cr); err != nil {
		return err
	}

	if cr.Status() == credit.StatusAvailable {
		resID := res.ID()
		m := ledger.NewCreditAdjustment(res.VenueID(), cr.ID(), &resID, -cr.AmountCents(), "credit issued on cancellation", now)
		if err := tx.Ledger().Append(ctx, tx.DB(), m); err != nil {
			return err
		}
	}

	slog.Info("credit issued",
		"credit_id", cr.ID().String(),
		"reservation_id", res.ID().String(),
		"status", cr.Status().String())
	return enqueue(ctx, tx, AggregateCredit, cr.ID(), EventCreditIssued, creditPayload(cr), now)
}

func requestHash(playerID uuid.UUID, in ReserveInput) string {
	data, _ := json.Marshal(struct {
		CourtID         uuid.UUID `json:"court_id"`
		PlayerID        uuid.UUID `json:"player_id"`
		Start           time.Time `json:"start"`
		DurationMinutes int       `json:"duration_minutes"`
		DepositRequired bool      `json:"deposit_required"`
	}{in.CourtID, playerID, in.Start.UTC(), in.DurationMinutes, in.DepositRequired})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func reservationPayload(res *reservation.Reservation) reservationEvent {
	iv := res.Interval()
	return reservationEvent{
		ReservationID: res.ID(),
		CourtID:       res.CourtID(),
		VenueID:       res.VenueID(),
		PlayerID:      res.PlayerID(),
		Start:         iv.Start,
		End:           iv.End,
		Status:        res.Status().String(),
		TotalCents:    res.Quote().TotalCents,
		DepositCents:  res.Quote().DepositCents,
	}
}

func creditPayload(cr *credit.Credit) creditEvent {
	return creditEvent{
		CreditID:            cr.ID(),
		PlayerID:            cr.PlayerID(),
		VenueID:             cr.VenueID(),
		SourceReservationID: cr.SourceReservationID(),
		Status:              cr.Status().String(),
		AmountCents:         cr.AmountCents(),
		ExpiresAt:           cr.ExpiresAt(),
	}
}
