package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyComment rejects submissions whose text is blank after trimming.
// It is distinct from ValidationError so callers can show a plain "write
// something" message instead of a content warning.
var ErrEmptyComment = errors.New("comment text is empty")

// ValidationError carries every rule a submission violated so the caller
// can surface all of them in one pass.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("comment rejected: %s", strings.Join(e.Violations, "; "))
}

// UnavailableError wraps a storage failure. A submission that could not be
// confirmed as stored is reported, never silently dropped.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("comment store unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }
