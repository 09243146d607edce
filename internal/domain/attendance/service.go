package attendance

import "context"

// AttendanceService defines business logic for attendance records
type AttendanceService interface {
	// CreateAttendance creates a record, deriving late/undertime/hours
	// from the raw clock times unless a nonzero manual value was supplied
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// UpdateAttendance edits a not-yet-posted record; any raw time change
	// forces a full recompute of the derived metrics
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// GetAttendance retrieves a single record by ID
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// ListAttendance retrieves records with filters
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// DeleteAttendance removes a not-yet-posted record
	DeleteAttendance(ctx context.Context, id string) error
}
