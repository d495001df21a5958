package services

import "errors"

// ErrValidation marks malformed or missing input. Specific validation
// errors wrap it so callers can map the whole family with errors.Is.
var ErrValidation = errors.New("validation failed")

func validationError(field, msg string) error {
	return &fieldError{field: field, msg: msg}
}

type fieldError struct {
	field string
	msg   string
}

func (e *fieldError) Error() string { return e.msg }

func (e *fieldError) Unwrap() error { return ErrValidation }

// ValidationField returns the input field a validation error refers to.
func ValidationField(err error) (string, bool) {
	var fe *fieldError
	if errors.As(err, &fe) && fe.field != "" {
		return fe.field, true
	}
	return "", false
}
