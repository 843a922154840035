package commands

import (
	"github.com/Arielcito/rcfapp-sub002/internal/infra"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
)

// lookupErr maps a failed lookup onto notFound, keeping other failures intact.
func lookupErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return storageErr(err)
}

// storageErr marks connectivity failures so the transport can answer 503.
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindConflict) {
		return errs.ErrReservationConflict
	}
	if infra.IsUnavailable(err) {
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}
	return err
}
