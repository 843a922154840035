package converter

import (
	"github.com/Arielcito/rcfapp-sub002/internal/domain/venue"
	sqlc "github.com/Arielcito/rcfapp-sub002/internal/infra/sqlc/generated"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
)

func VenueFromRow(row sqlc.GetVenueRow) (venue.Venue, error) {
	hours, err := venue.NewHours(int(row.OpensMin), int(row.ClosesMin))
	if err != nil {
		return venue.Venue{}, errs.Wrapf(err, "venue %s", row.ID)
	}
	return venue.Venue{
		ID:       row.ID,
		OwnerID:  row.OwnerID,
		Name:     row.Name,
		Hours:    hours,
		TimeZone: row.TimeZone,
	}, nil
}

func CourtFromRow(row sqlc.GetCourtRow) venue.Court {
	return venue.Court{
		ID:                 row.ID,
		VenueID:            row.VenueID,
		Name:               row.Name,
		SlotMinutes:        int(row.SlotMinutes),
		GranularityMinutes: int(row.GranularityMinutes),
		HourlyRateCents:    row.HourlyRateCents,
		DepositCents:       row.DepositCents,
		Active:             row.IsActive,
	}
}
