package summary

import (
	"context"
	"time"
)

// SummaryRepository defines data access methods for period summaries.
type SummaryRepository interface {
	// Upsert writes a summary, replacing an existing draft row for the
	// same (employee, year, month, period_type)
	Upsert(ctx context.Context, s PeriodSummary) (PeriodSummary, error)

	// GetByID retrieves a summary by ID
	GetByID(ctx context.Context, id string) (PeriodSummary, error)

	// GetByEmployeePeriod retrieves the summary for one employee and cutoff
	GetByEmployeePeriod(ctx context.Context, employeeID string, year, month int, periodType PeriodType) (*PeriodSummary, error)

	// MarkPosted transitions draft -> posted, stamping the posting actor.
	// The posting stamp is never touched again after this.
	MarkPosted(ctx context.Context, id string, actorID string, at time.Time) error

	// MarkLocked transitions posted -> locked, stamping the locking actor
	MarkLocked(ctx context.Context, id string, actorID string, at time.Time) error

	// List retrieves summaries with filters and pagination
	List(ctx context.Context, filter SummaryFilter) ([]PeriodSummary, int64, error)
}
