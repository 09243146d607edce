package payroll

import "errors"

// Payroll domain errors
var (
	ErrFinalPayrollNotFound      = errors.New("final payroll not found")
	ErrFinalPayrollAlreadyExists = errors.New("final payroll already exists for this employee and period")
	ErrPayrollNotEditable        = errors.New("final payroll is no longer editable")
	ErrNotApproved               = errors.New("final payroll must be approved before finalizing")
	ErrNotFinalized              = errors.New("final payroll must be finalized before marking paid")
	ErrAlreadyProcessed          = errors.New("final payroll approval has already been decided")
	ErrBenefitNotFound           = errors.New("benefit record not found")
	ErrDeductionNotFound         = errors.New("deduction record not found")
)
