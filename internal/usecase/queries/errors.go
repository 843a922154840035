package queries

import (
	"github.com/Arielcito/rcfapp-sub002/internal/infra"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
)

func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}

func storageErr(err error) error {
	if err != nil && infra.IsUnavailable(err) {
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}
	return err
}
