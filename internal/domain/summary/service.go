package summary

import "context"

// SummaryService defines business logic for period summaries
type SummaryService interface {
	// GenerateSummary folds the not-yet-posted attendance of one employee
	// and cutoff into a summary, replacing an existing draft. Posted and
	// locked summaries are never regenerated.
	GenerateSummary(ctx context.Context, req GenerateSummaryRequest) (SummaryResponse, error)

	// PostSummary transitions draft to posted and marks the contributing
	// attendance records as consumed, all in one transaction
	PostSummary(ctx context.Context, summaryID string, actorID string) (SummaryResponse, error)

	// LockSummary transitions posted to locked (terminal)
	LockSummary(ctx context.Context, summaryID string, actorID string) (SummaryResponse, error)

	// GetSummary retrieves a single summary by ID
	GetSummary(ctx context.Context, id string) (SummaryResponse, error)

	// ListSummaries retrieves summaries with filters
	ListSummaries(ctx context.Context, filter SummaryFilter) (ListSummaryResponse, error)
}
