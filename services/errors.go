package services

import "errors"

// ValidationError marks input the caller can correct. Controllers answer it
// with a 400; every other service failure is a 500.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationError(msg string) error { return &ValidationError{msg: msg} }

// IsValidation reports whether err originated from request validation.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
