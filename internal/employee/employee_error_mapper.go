package employee

import (
	"errors"

	employeeerrors "gtb-hrms/internal/employee/errors"
	"gtb-hrms/internal/store"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, store.ErrNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	return err
}
