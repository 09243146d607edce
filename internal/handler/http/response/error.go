package response

import (
	"errors"
	"net/http"

	"github.com/hrweb-ph/payroll-backend-go/internal/domain/attendance"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/employee"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/payroll"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/summary"
	"github.com/hrweb-ph/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceAlreadyExists):
		Conflict(w, "Attendance record already exists for this employee and date")
	case errors.Is(err, attendance.ErrAttendancePosted):
		Conflict(w, "Attendance record already posted")

	// Period summary domain errors
	case errors.Is(err, summary.ErrSummaryNotFound):
		NotFound(w, "Period summary not found")
	case errors.Is(err, summary.ErrSummaryNotDraft):
		Conflict(w, "Period summary already posted")
	case errors.Is(err, summary.ErrSummaryLocked):
		Conflict(w, "Period summary is locked")
	case errors.Is(err, summary.ErrSummaryNotPosted):
		Conflict(w, "Period summary must be posted first")
	case errors.Is(err, summary.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Final payroll domain errors
	case errors.Is(err, payroll.ErrFinalPayrollNotFound):
		NotFound(w, "Final payroll not found")
	case errors.Is(err, payroll.ErrFinalPayrollAlreadyExists):
		Conflict(w, "Final payroll already exists for this employee and period")
	case errors.Is(err, payroll.ErrPayrollNotEditable):
		Conflict(w, "Final payroll is no longer editable")
	case errors.Is(err, payroll.ErrNotApproved):
		Conflict(w, "Final payroll must be approved before finalizing")
	case errors.Is(err, payroll.ErrNotFinalized):
		Conflict(w, "Final payroll must be finalized before marking paid")
	case errors.Is(err, payroll.ErrAlreadyProcessed):
		Conflict(w, "Final payroll approval has already been decided")
	case errors.Is(err, payroll.ErrBenefitNotFound):
		NotFound(w, "Benefit record not found")
	case errors.Is(err, payroll.ErrDeductionNotFound):
		NotFound(w, "Deduction record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
