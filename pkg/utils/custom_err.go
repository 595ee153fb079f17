package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
	ErrDatabaseError      = errors.New("database error")
	ErrScheduleNotFound   = errors.New("schedule not found")
	ErrPlaceNotFound      = errors.New("place not found")
	ErrBudgetNotFound     = errors.New("budget not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrGenerationFailed   = errors.New("ai generation failed")
	ErrFareUnavailable    = errors.New("transit fare unavailable")
)

// ExtractionError means the model reply contained no recoverable JSON.
// It keeps a snippet of the raw reply for diagnosis.
type ExtractionError struct {
	Snippet string
	Err     error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no recoverable JSON in model reply: %v (snippet: %q)", e.Err, e.Snippet)
	}
	return fmt.Sprintf("no recoverable JSON in model reply (snippet: %q)", e.Snippet)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

func NewExtractionError(raw string, err error) *ExtractionError {
	const max = 200
	snippet := raw
	if len(snippet) > max {
		snippet = snippet[:max] + "..."
	}
	return &ExtractionError{Snippet: snippet, Err: err}
}

// MalformedPlanError means the parsed payload has no usable "plans" structure.
type MalformedPlanError struct {
	Reason string
}

func (e *MalformedPlanError) Error() string {
	return "malformed plan payload: " + e.Reason
}
