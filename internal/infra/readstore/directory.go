package readstore

import (
	"context"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/venue"
	"github.com/Arielcito/rcfapp-sub002/internal/infra"
	"github.com/Arielcito/rcfapp-sub002/internal/infra/repository/converter"
	sqlc "github.com/Arielcito/rcfapp-sub002/internal/infra/sqlc/generated"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DirectoryReadQueries interface {
	GetVenue(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetVenueRow, error)
	GetCourt(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetCourtRow, error)
}

// DirectoryReadStore reads venues and courts, which are maintained outside this service.
type DirectoryReadStore struct {
	queries DirectoryReadQueries
	db      sqlc.DBTX
}

func NewDirectoryReadStore(queries DirectoryReadQueries, db sqlc.DBTX) *DirectoryReadStore {
	return &DirectoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DirectoryReadStore) VenueByID(ctx context.Context, id uuid.UUID) (venue.Venue, error) {
	row, err := r.queries.GetVenue(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return venue.Venue{}, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return venue.Venue{}, infra.WrapRepoErr("failed to find venue by ID", err)
	}

	v, err := converter.VenueFromRow(row)
	if err != nil {
		return venue.Venue{}, infra.WrapRepoErr("venue row is inconsistent", err, infra.KindDBFailure)
	}
	return v, nil
}

func (r *DirectoryReadStore) CourtByID(ctx context.Context, id uuid.UUID) (venue.Court, error) {
	row, err := r.queries.GetCourt(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return venue.Court{}, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return venue.Court{}, infra.WrapRepoErr("failed to find court by ID", err)
	}
	return converter.CourtFromRow(row), nil
}
