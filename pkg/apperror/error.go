package apperror

import "net/http"

// Categories rendered in the "error" field of failed responses.
const (
	CategoryValidation    = "Validation error"
	CategoryExternalStore = "Notion API error"
	CategoryInternal      = "Internal server error"
)

type AppError struct {
	Code     int    `json:"code"`
	Category string `json:"error"`
	Message  string `json:"details"`
	Err      error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, category, message string, err error) *AppError {
	return &AppError{
		Code:     code,
		Category: category,
		Message:  message,
		Err:      err,
	}
}

// Validation marks a malformed or incomplete inbound payload.
func Validation(message string) *AppError {
	return New(http.StatusBadRequest, CategoryValidation, message, nil)
}

// ExternalStore marks a record store call that was rejected or could not complete.
func ExternalStore(message string, err error) *AppError {
	return New(http.StatusBadGateway, CategoryExternalStore, message, err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, CategoryInternal, err.Error(), err)
}
