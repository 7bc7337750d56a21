// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no survey has the requested id.
	ErrNotFound = errors.New("survey not found")
	// ErrValidation is wrapped by every ValidationError.
	ErrValidation = errors.New("invalid submission")
)

// ValidationError reports the first submission field that failed a check.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
