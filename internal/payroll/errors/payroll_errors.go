package payrollerrors

import (
	"net/http"

	"gtb-hrms/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrInvalidPeriodFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid period format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrPayslipForbidden = apperror.New(
		apperror.CodeForbidden,
		"you can only view your own payslip",
		http.StatusForbidden,
	)
	ErrPayslipRender = apperror.New(
		apperror.CodeInternalError,
		"failed to render payslip",
		http.StatusInternalServerError,
	)
)
