package utils

import (
	"errors"
	"fmt"

	"github.com/rotisserie/eris"
)

// InvalidDateError is returned when an input does not denote a real
// calendar date.
type InvalidDateError struct {
	Input string
	Err   error
}

func NewInvalidDateError(input string, cause error) *InvalidDateError {
	if cause == nil {
		cause = eris.New("not a calendar date")
	} else {
		cause = eris.Wrap(cause, "parse calendar date")
	}
	return &InvalidDateError{Input: input, Err: cause}
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q", e.Input)
}

func (e *InvalidDateError) Unwrap() error { return e.Err }

// InvalidRangeError is returned when a numeric input falls outside its
// accepted window.
type InvalidRangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func NewInvalidRangeError(field string, value, min, max int) *InvalidRangeError {
	return &InvalidRangeError{Field: field, Value: value, Min: min, Max: max}
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%s %d outside [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

func IsInvalidDate(err error) bool {
	var target *InvalidDateError
	return errors.As(err, &target)
}

func IsInvalidRange(err error) bool {
	var target *InvalidRangeError
	return errors.As(err, &target)
}
