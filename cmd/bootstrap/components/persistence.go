package components

import (
	sqlc "github.com/Arielcito/rcfapp-sub002/internal/infra/sqlc/generated"
	"github.com/Arielcito/rcfapp-sub002/internal/infra/uow"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/shared"

	"go.uber.org/fx"
)

// Repositories and read stores are built per transaction by the unit of work,
// so only the unit of work itself is provided here.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries() *sqlc.Queries {
	return sqlc.New()
}
