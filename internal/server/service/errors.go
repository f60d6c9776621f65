package service

import "errors"

// ErrForbidden means the record exists but belongs to a different owner.
var ErrForbidden = errors.New("access denied")

// ValidationError reports client input that fails a required-field check.
// It carries the message returned to the caller verbatim.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }
