package attendanceerrors

import (
	"net/http"

	"gtb-hrms/internal/shared/apperror"
)

var (
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be All, Present, Late or Absent",
		http.StatusBadRequest,
	)
)
