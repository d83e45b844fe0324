package autherrors

import (
	"net/http"

	"gtb-hrms/internal/shared/apperror"
)

var (
	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Invalid or malformed token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Session has expired, please select a role again",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"role must be one of: Admin, HR Manager, Manager, Employee, Intern",
		http.StatusBadRequest,
	)
	ErrPrincipalNotFound = apperror.New(
		apperror.CodeNotFound,
		"no user is configured for the selected role",
		http.StatusNotFound,
	)
	ErrSessionSecretMissing = apperror.New(
		apperror.CodeInternalError,
		"session secret is not configured",
		http.StatusInternalServerError,
	)
)
