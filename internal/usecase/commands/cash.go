package commands

import (
	"context"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/ledger"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/user"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/clock"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/shared"

	"github.com/google/uuid"
)

type ManualMovementInput struct {
	VenueID     uuid.UUID
	Kind        ledger.Kind
	AmountCents int64
	Description string
	Method      ledger.Method
}

type CashCommands interface {
	RecordManualMovement(ctx context.Context, actor user.Actor, in ManualMovementInput) (*ledger.Movement, error)
}

type cashUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCashUseCase(uow shared.UnitOfWork, clk clock.Clock) CashCommands {
	return &cashUseCaseImpl{uow: uow, clock: clk}
}

func (uc *cashUseCaseImpl) RecordManualMovement(ctx context.Context, actor user.Actor, in ManualMovementInput) (*ledger.Movement, error) {
	v, err := uc.uow.Reads().VenueByID(ctx, in.VenueID)
	if err != nil {
		return nil, lookupErr(err, errs.ErrVenueNotFound)
	}
	if !actor.CanOperateVenue(v.OwnerID) {
		return nil, errs.ErrForbidden
	}

	now := uc.clock.Now()
	m, err := ledger.NewManualMovement(v.ID, in.Kind, in.AmountCents, in.Description, in.Method, now)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Ledger().Append(ctx, tx.DB(), m); err != nil {
			return err
		}
		return enqueue(ctx, tx, AggregateLedger, m.ID(), EventMovementRecorded, movementEvent{
			MovementID:  m.ID(),
			VenueID:     m.VenueID(),
			Kind:        m.Kind().String(),
			AmountCents: m.AmountCents(),
			Method:      string(m.Method()),
		}, now)
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return m, nil
}
