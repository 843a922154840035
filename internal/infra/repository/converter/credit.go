package converter

import (
	"github.com/Arielcito/rcfapp-sub002/internal/domain/credit"
	sqlc "github.com/Arielcito/rcfapp-sub002/internal/infra/sqlc/generated"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/pgconv"
)

func CreditToInfra(c *credit.Credit) sqlc.CreateCreditParams {
	return sqlc.CreateCreditParams{
		ID:                  c.ID(),
		PlayerID:            c.PlayerID(),
		VenueID:             c.VenueID(),
		SourceReservationID: c.SourceReservationID(),
		AmountCents:         c.AmountCents(),
		Status:              c.Status().String(),
		IssuedAt:            pgconv.TimeToPgtype(c.IssuedAt()),
		ExpiresAt:           pgconv.TimePtrToPgtype(c.ExpiresAt()),
		ResolveAfter:        pgconv.TimePtrToPgtype(c.ResolveAfter()),
		ResolvedAt:          pgconv.TimePtrToPgtype(c.ResolvedAt()),
		SingleUse:           c.SingleUse(),
	}
}

func CreditUpdateToInfra(c *credit.Credit) sqlc.UpdateCreditParams {
	return sqlc.UpdateCreditParams{
		ID:         c.ID(),
		Status:     c.Status().String(),
		ExpiresAt:  pgconv.TimePtrToPgtype(c.ExpiresAt()),
		ResolvedAt: pgconv.TimePtrToPgtype(c.ResolvedAt()),
		SingleUse:  c.SingleUse(),
		ConsumedBy: pgconv.UUIDPtrToPgtype(c.ConsumedBy()),
	}
}

func CreditFromRow(row sqlc.Credit) *credit.Credit {
	return credit.ReconstructCredit(
		row.ID,
		row.PlayerID,
		row.VenueID,
		row.SourceReservationID,
		row.AmountCents,
		credit.Status(row.Status),
		pgconv.TimeFromPgtype(row.IssuedAt),
		pgconv.TimePtrFromPgtype(row.ExpiresAt),
		pgconv.TimePtrFromPgtype(row.ResolveAfter),
		pgconv.TimePtrFromPgtype(row.ResolvedAt),
		row.SingleUse,
		pgconv.UUIDPtrFromPgtype(row.ConsumedBy),
	)
}

func CreditsFromRows(rows []sqlc.Credit) []*credit.Credit {
	out := make([]*credit.Credit, len(rows))
	for i, row := range rows {
		out[i] = CreditFromRow(row)
	}
	return out
}
