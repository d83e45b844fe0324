package apperror

import "fmt"

// AppError is the error type services return. Sentinels are package level
// values; WithMessage derives copies that still match their sentinel.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error

	base *AppError
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        nil,
	}
}

// WithCause returns a copy of e carrying err as its cause. The cause is
// logged but never reaches the response body.
func (e *AppError) WithCause(err error) *AppError {
	out := *e
	out.Err = err
	if out.base == nil {
		out.base = e
	}
	return &out
}

// WithMessage returns a copy of e carrying a more specific message. The copy
// still matches e under errors.Is.
func (e *AppError) WithMessage(message string) *AppError {
	out := *e
	out.Message = message
	if out.base == nil {
		out.base = e
	}
	return &out
}

// Is matches the sentinel a copy was derived from.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && e.base != nil && e.base == t
}
