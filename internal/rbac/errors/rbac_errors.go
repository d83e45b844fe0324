package rbacerrors

import (
	"net/http"

	"gtb-hrms/internal/shared/apperror"
)

var ErrUnknownRole = apperror.New(
	apperror.CodeInvalidInput,
	"unknown role",
	http.StatusBadRequest,
)
