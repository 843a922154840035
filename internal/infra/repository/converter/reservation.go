package converter

import (
	"github.com/Arielcito/rcfapp-sub002/internal/domain/reservation"
	sqlc "github.com/Arielcito/rcfapp-sub002/internal/infra/sqlc/generated"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	iv := res.Interval()
	return sqlc.CreateReservationParams{
		ID:            res.ID(),
		CourtID:       res.CourtID(),
		VenueID:       res.VenueID(),
		PlayerID:      res.PlayerID(),
		StartsAt:      pgconv.TimeToPgtype(iv.Start),
		EndsAt:        pgconv.TimeToPgtype(iv.End),
		TotalCents:    res.Quote().TotalCents,
		DepositCents:  res.Quote().DepositCents,
		PaymentStatus: res.Status().String(),
		CreatedAt:     pgconv.TimeToPgtype(res.CreatedAt()),
	}
}

func ReservationPaymentToInfra(res *reservation.Reservation) sqlc.UpdateReservationPaymentParams {
	return sqlc.UpdateReservationPaymentParams{
		ID:                 res.ID(),
		PaymentStatus:      res.Status().String(),
		FundedByCreditID:   pgconv.UUIDPtrToPgtype(res.FundedByCreditID()),
		CreditAppliedCents: res.CreditAppliedCents(),
		CancelledAt:        pgconv.TimePtrToPgtype(res.CancelledAt()),
	}
}

// ReservationFromRow accepts both GetReservation and GetReservationForUpdate rows,
// which share a layout.
func ReservationFromRow(row sqlc.GetReservationRow) *reservation.Reservation {
	return reservation.ReconstructReservation(
		row.ID,
		row.CourtID,
		row.VenueID,
		row.PlayerID,
		reservation.Interval{
			Start: pgconv.TimeFromPgtype(row.StartsAt),
			End:   pgconv.TimeFromPgtype(row.EndsAt),
		},
		reservation.Quote{TotalCents: row.TotalCents, DepositCents: row.DepositCents},
		reservation.Status(row.PaymentStatus),
		pgconv.UUIDPtrFromPgtype(row.FundedByCreditID),
		row.CreditAppliedCents,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
	)
}

func IntervalFromPgtype(start, end pgtype.Timestamptz) reservation.Interval {
	return reservation.Interval{Start: pgconv.TimeFromPgtype(start), End: pgconv.TimeFromPgtype(end)}
}
