package errors

import "errors"

var (
	ErrInvalidInput          = errors.New("report generation input is invalid")
	ErrIdempotencyKeyMissing = errors.New("idempotency key is required")
	ErrIdempotencyConflict   = errors.New("idempotency key already used with different payload")
	ErrDraftNotFound         = errors.New("report draft not found")
	ErrDraftIncomplete       = errors.New("draft is missing patient details or panel selection")
	ErrNoResults             = errors.New("draft has no entered results to print")
	ErrReportNotFound        = errors.New("generated report not found")
)
