package leaveerrors

import (
	"net/http"

	"gtb-hrms/internal/shared/apperror"
)

var (
	ErrInvalidRequest = apperror.New(
		apperror.CodeInvalidInput,
		"Please fill all fields correctly. End date must be after or same as start date.",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = ErrInvalidRequest.WithMessage(
		"End date must be after or same as start date.",
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"leave_type must be one of Casual Leave, Sick Leave, Earned Leave",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be Approved or Rejected",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"status filter must be All, Pending, Approved or Rejected",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave not found",
		http.StatusNotFound,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"leave already exists in overlapping period",
		http.StatusConflict,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid leave status transition",
		http.StatusBadRequest,
	)
	// ErrInsufficientBalance is returned with a per-request message; match
	// it with errors.Is.
	ErrInsufficientBalance = apperror.New(
		apperror.CodeConflict,
		"Insufficient balance. Approval failed.",
		http.StatusConflict,
	)
	ErrRequestForOthers = apperror.New(
		apperror.CodeForbidden,
		"you can only request leave for yourself",
		http.StatusForbidden,
	)
	ErrManageForbidden = apperror.New(
		apperror.CodeForbidden,
		"you are not allowed to approve or reject leave requests",
		http.StatusForbidden,
	)
)
