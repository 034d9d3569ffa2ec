package httperr

import (
	"errors"
	"net/http"
)

// BusinessError is a terminal domain result. Message is part of the
// observable contract; callers match on Code, clients read Message.
type BusinessError struct {
	Status  int
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Message
}

func ErrNotFound(code, message string) error {
	return BusinessError{Status: http.StatusNotFound, Code: code, Message: message}
}

func ErrBadRequest(code, message string) error {
	return BusinessError{Status: http.StatusBadRequest, Code: code, Message: message}
}

func ErrUnauthorized(code, message string) error {
	return BusinessError{Status: http.StatusUnauthorized, Code: code, Message: message}
}

func ErrForbidden(code, message string) error {
	return BusinessError{Status: http.StatusForbidden, Code: code, Message: message}
}

func ErrConflict(code, message string) error {
	return BusinessError{Status: http.StatusConflict, Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// StatusOf resolves the HTTP status for an error; anything that is not a
// BusinessError is an internal failure.
func StatusOf(err error) int {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Status
	}
	return http.StatusInternalServerError
}
