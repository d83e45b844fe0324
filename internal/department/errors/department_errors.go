package departmenterrors

import (
	"net/http"

	"gtb-hrms/internal/shared/apperror"
)

var ErrDepartmentNotFound = apperror.New(
	apperror.CodeNotFound,
	"Department not found",
	http.StatusNotFound,
)
