package models

import "errors"

// ErrInvariantViolation marks a programmer error: a record that can never be valid.
var ErrInvariantViolation = errors.New("invariant violation")
