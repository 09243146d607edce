package summary

import "errors"

// Period summary domain errors
var (
	ErrSummaryNotFound  = errors.New("period summary not found")
	ErrSummaryNotDraft  = errors.New("period summary already posted, cannot regenerate")
	ErrSummaryLocked    = errors.New("period summary is locked")
	ErrSummaryNotPosted = errors.New("period summary must be posted first")
	ErrInvalidPeriod    = errors.New("invalid payroll period")
)
