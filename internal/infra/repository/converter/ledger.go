package converter

import (
	"github.com/Arielcito/rcfapp-sub002/internal/domain/ledger"
	sqlc "github.com/Arielcito/rcfapp-sub002/internal/infra/sqlc/generated"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/pgconv"
)

func MovementToInfra(m *ledger.Movement) sqlc.CreateLedgerMovementParams {
	return sqlc.CreateLedgerMovementParams{
		ID:            m.ID(),
		VenueID:       m.VenueID(),
		Kind:          m.Kind().String(),
		AmountCents:   m.AmountCents(),
		ReservationID: pgconv.UUIDPtrToPgtype(m.ReservationID()),
		CreditID:      pgconv.UUIDPtrToPgtype(m.CreditID()),
		OccurredAt:    pgconv.TimeToPgtype(m.OccurredAt()),
		Method:        pgconv.StringToNullablePgtype(string(m.Method())),
		Stage:         pgconv.StringToNullablePgtype(string(m.Stage())),
		Description:   m.Description(),
	}
}

func MovementFromRow(row sqlc.ListLedgerMovementsRow) *ledger.Movement {
	return ledger.ReconstructMovement(
		row.ID,
		row.VenueID,
		ledger.Kind(row.Kind),
		row.AmountCents,
		pgconv.UUIDPtrFromPgtype(row.ReservationID),
		pgconv.UUIDPtrFromPgtype(row.CreditID),
		pgconv.TimeFromPgtype(row.OccurredAt),
		ledger.Method(pgconv.StringFromPgtype(row.Method)),
		ledger.Stage(pgconv.StringFromPgtype(row.Stage)),
		row.Description,
	)
}
