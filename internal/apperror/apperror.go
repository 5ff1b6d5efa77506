package apperror

import "net/http"

type Code string

const (
	BadRequest Code = "BAD_REQUEST"
	Validation Code = "VALIDATION"
	NotFound   Code = "NOT_FOUND"
	Internal   Code = "INTERNAL"
	Conflict   Code = "CONFLICT"
)

type AppError struct {
	code     Code
	message  string
	messages []string
}

func New(code Code, message string) *AppError {
	return &AppError{code: code, message: message}
}

// NewValidation carries the full list of violated rules. Violations are
// reported together, never short-circuited, and surfaced verbatim to the
// caller.
func NewValidation(messages []string) *AppError {
	return &AppError{code: Validation, message: "Validation failed", messages: messages}
}

func (e *AppError) Error() string      { return e.message }
func (e *AppError) Code() Code         { return e.code }
func (e *AppError) Message() string    { return e.message }
func (e *AppError) Messages() []string { return e.messages }

func (e *AppError) HTTPStatus() int {
	switch e.code {
	case BadRequest, Validation:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
