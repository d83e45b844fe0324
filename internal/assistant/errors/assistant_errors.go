package assistanterrors

import (
	"net/http"

	"gtb-hrms/internal/shared/apperror"
)

var (
	ErrEmptyMessage = apperror.New(
		apperror.CodeInvalidInput,
		"message must not be empty",
		http.StatusBadRequest,
	)
	ErrBusy = apperror.New(
		apperror.CodeConflict,
		"the assistant is still replying to your previous message",
		http.StatusConflict,
	)
	ErrUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Sorry, I encountered an error. Please try again.",
		http.StatusServiceUnavailable,
	)
)
