package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrweb-ph/payroll-backend-go/internal/domain/employee"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/payroll"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/summary"
	"github.com/hrweb-ph/payroll-backend-go/internal/pkg/database"
	"github.com/hrweb-ph/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type PayrollServiceImpl struct {
	db *database.DB
	payroll.PayrollRepository
	summary.SummaryRepository
	employee.EmployeeRepository
	benefitRepo   payroll.BenefitRepository
	deductionRepo payroll.DeductionRepository
	logger        *slog.Logger
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	summaryRepo summary.SummaryRepository,
	employeeRepo employee.EmployeeRepository,
	benefitRepo payroll.BenefitRepository,
	deductionRepo payroll.DeductionRepository,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                 db,
		PayrollRepository:  payrollRepo,
		SummaryRepository:  summaryRepo,
		EmployeeRepository: employeeRepo,
		benefitRepo:        benefitRepo,
		deductionRepo:      deductionRepo,
		logger:             logger,
	}
}

// GeneratePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, req payroll.GeneratePayrollRequest, actorID string) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	sum, err := s.SummaryRepository.GetByID(ctx, req.SummaryID)
	if err != nil {
		if errors.Is(err, summary.ErrSummaryNotFound) {
			return payroll.PayrollResponse{}, summary.ErrSummaryNotFound
		}
		return payroll.PayrollResponse{}, fmt.Errorf("failed to get summary: %w", err)
	}
	if sum.Status == summary.SummaryStatusDraft {
		return payroll.PayrollResponse{}, summary.ErrSummaryNotPosted
	}

	existing, err := s.PayrollRepository.GetByEmployeePeriod(ctx, sum.EmployeeID, sum.Year, sum.Month, sum.PeriodType)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to check existing payroll: %w", err)
	}
	if existing != nil {
		return payroll.PayrollResponse{}, payroll.ErrFinalPayrollAlreadyExists
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, sum.EmployeeID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	record := payroll.FinalPayroll{
		SummaryID:  sum.ID,
		EmployeeID: sum.EmployeeID,
		Year:       sum.Year,
		Month:      sum.Month,
		PeriodType: sum.PeriodType,

		EmployeeName: emp.Name,
		Department:   emp.Department,
		JobTitle:     emp.JobTitle,
		PayType:      emp.PayType,
		BasicRate:    emp.BasicRate,
		PayAllowance: emp.PayAllowance,
		IsTaxable:    emp.IsTaxable,

		DaysWorked:            sum.DaysWorked,
		HoursWorked:           sum.HoursWorked,
		LateUnderMinutes:      sum.LateUnderMinutes,
		OTRegularHours:        sum.OTHours,
		NSDHours:              sum.NSDHours,
		HolidayHours:          sum.HolidayHours,
		OTRegularHolidayHours: sum.OTRegHolidayHours,
		OTSpecialHolidayHours: sum.OTSpecialHolidayHours,
		TravelOrderHours:      sum.TravelOrderHours,
		SLVLDays:              sum.SLVLDays,
		RetroAmount:           sum.Retro,
		OffsetHours:           sum.OffsetHours,
		TripCount:             sum.TripCount,
		HasCT:                 sum.HasCT,
		HasCS:                 sum.HasCS,
		HasOB:                 sum.HasOB,

		MFShares:               sum.MFShares,
		MFLoan:                 sum.MFLoan,
		SSSLoan:                sum.SSSLoan,
		HDMFLoan:               sum.HDMFLoan,
		AdvanceDeduction:       sum.Advance,
		ChargeStore:            sum.ChargeStore,
		ChargeDeduction:        sum.Charge,
		MealsDeduction:         sum.Meals,
		MiscellaneousDeduction: sum.Miscellaneous,
		OtherDeductions:        sum.OtherDeductions,

		// Seeded from the benefit row; the calculator replaces it with the
		// profile allowance
		Allowances: sum.Allowances,

		Status:         payroll.PayrollStatusDraft,
		ApprovalStatus: payroll.ApprovalStatusPending,
	}

	Calculate(&record)

	var saved payroll.FinalPayroll
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		var txErr error
		saved, txErr = s.PayrollRepository.Create(txCtx, record)
		return txErr
	})
	if err != nil {
		if errors.Is(err, payroll.ErrFinalPayrollAlreadyExists) {
			return payroll.PayrollResponse{}, payroll.ErrFinalPayrollAlreadyExists
		}
		return payroll.PayrollResponse{}, fmt.Errorf("failed to create final payroll: %w", err)
	}

	s.logger.Info("final payroll generated",
		slog.String("payroll_id", saved.ID),
		slog.String("employee_id", saved.EmployeeID),
		slog.String("actor_id", actorID),
	)

	return mapPayrollToResponse(saved), nil
}

// RecalculatePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) RecalculatePayroll(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	record, err := s.getPayroll(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if !record.Editable() {
		return payroll.PayrollResponse{}, payroll.ErrPayrollNotEditable
	}

	Calculate(&record)

	if err := s.PayrollRepository.Update(ctx, record); err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to update final payroll: %w", err)
	}

	return mapPayrollToResponse(record), nil
}

// UpdatePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpdatePayroll(ctx context.Context, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	record, err := s.getPayroll(ctx, req.ID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if !record.Editable() {
		return payroll.PayrollResponse{}, payroll.ErrPayrollNotEditable
	}

	if req.AbsenceDays != nil {
		record.AbsenceDays = *req.AbsenceDays
	}
	if req.OTRestDayHours != nil {
		record.OTRestDayHours = *req.OTRestDayHours
	}
	if req.OtherEarnings != nil {
		record.OtherEarnings = *req.OtherEarnings
	}
	if req.MFShares != nil {
		record.MFShares = *req.MFShares
	}
	if req.MFLoan != nil {
		record.MFLoan = *req.MFLoan
	}
	if req.SSSLoan != nil {
		record.SSSLoan = *req.SSSLoan
	}
	if req.HDMFLoan != nil {
		record.HDMFLoan = *req.HDMFLoan
	}
	if req.AdvanceDeduction != nil {
		record.AdvanceDeduction = *req.AdvanceDeduction
	}
	if req.ChargeStore != nil {
		record.ChargeStore = *req.ChargeStore
	}
	if req.ChargeDeduction != nil {
		record.ChargeDeduction = *req.ChargeDeduction
	}
	if req.MealsDeduction != nil {
		record.MealsDeduction = *req.MealsDeduction
	}
	if req.MiscellaneousDeduction != nil {
		record.MiscellaneousDeduction = *req.MiscellaneousDeduction
	}
	if req.OtherDeductions != nil {
		record.OtherDeductions = *req.OtherDeductions
	}

	Calculate(&record)

	if err := s.PayrollRepository.Update(ctx, record); err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to update final payroll: %w", err)
	}

	return mapPayrollToResponse(record), nil
}

// ApprovePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) ApprovePayroll(ctx context.Context, req payroll.ApprovalRequest, actorID string) (payroll.PayrollResponse, error) {
	return s.decideApproval(ctx, req, actorID, payroll.ApprovalStatusApproved)
}

// RejectPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) RejectPayroll(ctx context.Context, req payroll.ApprovalRequest, actorID string) (payroll.PayrollResponse, error) {
	return s.decideApproval(ctx, req, actorID, payroll.ApprovalStatusRejected)
}

func (s *PayrollServiceImpl) decideApproval(ctx context.Context, req payroll.ApprovalRequest, actorID string, decision payroll.ApprovalStatus) (payroll.PayrollResponse, error) {
	record, err := s.getPayroll(ctx, req.ID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if record.ApprovalStatus != payroll.ApprovalStatusPending {
		return payroll.PayrollResponse{}, payroll.ErrAlreadyProcessed
	}

	now := time.Now()
	record.ApprovalStatus = decision
	record.ApprovedBy = &actorID
	record.ApprovedAt = &now
	record.ApprovalRemarks = req.Remarks

	if err := s.PayrollRepository.Update(ctx, record); err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to update final payroll: %w", err)
	}

	s.logger.Info("payroll approval decided",
		slog.String("payroll_id", record.ID),
		slog.String("decision", string(decision)),
		slog.String("actor_id", actorID),
	)

	return mapPayrollToResponse(record), nil
}

// FinalizePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) FinalizePayroll(ctx context.Context, id string, actorID string) (payroll.PayrollResponse, error) {
	record, err := s.getPayroll(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if record.Status != payroll.PayrollStatusDraft {
		return payroll.PayrollResponse{}, payroll.ErrPayrollNotEditable
	}
	if record.ApprovalStatus != payroll.ApprovalStatusApproved {
		return payroll.PayrollResponse{}, payroll.ErrNotApproved
	}

	now := time.Now()
	record.Status = payroll.PayrollStatusFinalized
	record.FinalizedBy = &actorID
	record.FinalizedAt = &now

	if err := s.PayrollRepository.Update(ctx, record); err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to update final payroll: %w", err)
	}

	return mapPayrollToResponse(record), nil
}

// MarkPaid implements payroll.PayrollService.
func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, id string, actorID string) (payroll.PayrollResponse, error) {
	record, err := s.getPayroll(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if record.Status != payroll.PayrollStatusFinalized {
		return payroll.PayrollResponse{}, payroll.ErrNotFinalized
	}

	now := time.Now()
	record.Status = payroll.PayrollStatusPaid
	record.PaidBy = &actorID
	record.PaidAt = &now

	if err := s.PayrollRepository.Update(ctx, record); err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to update final payroll: %w", err)
	}

	return mapPayrollToResponse(record), nil
}

// GetPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	record, err := s.getPayroll(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return mapPayrollToResponse(record), nil
}

// ListPayrolls implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayrolls(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	records, total, err := s.PayrollRepository.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, fmt.Errorf("failed to list payrolls: %w", err)
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapPayrollToResponse(record))
	}

	return payroll.ListPayrollResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Payrolls:   responses,
	}, nil
}

// UpsertBenefit implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpsertBenefit(ctx context.Context, req payroll.UpsertBenefitRequest) (payroll.BenefitResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BenefitResponse{}, err
	}
	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.BenefitResponse{}, err
	}

	record := payroll.Benefit{
		EmployeeID: req.EmployeeID,
		Year:       req.Year,
		Month:      req.Month,
		Cutoff:     summary.PeriodType(req.Cutoff),
		IsDefault:  req.IsDefault,
		MFShares:   req.MFShares,
		SSSLoan:    req.SSSLoan,
		HDMFLoan:   req.HDMFLoan,
		HDMFPrem:   req.HDMFPrem,
		SSSPrem:    req.SSSPrem,
		Philhealth: req.Philhealth,
		Allowances: req.Allowances,
	}

	saved, err := s.benefitRepo.Upsert(ctx, record)
	if err != nil {
		return payroll.BenefitResponse{}, fmt.Errorf("failed to upsert benefit: %w", err)
	}
	return mapBenefitToResponse(saved), nil
}

// UpsertDeduction implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpsertDeduction(ctx context.Context, req payroll.UpsertDeductionRequest) (payroll.DeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.DeductionResponse{}, err
	}
	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.DeductionResponse{}, err
	}

	record := payroll.Deduction{
		EmployeeID:      req.EmployeeID,
		Year:            req.Year,
		Month:           req.Month,
		Cutoff:          summary.PeriodType(req.Cutoff),
		IsDefault:       req.IsDefault,
		Advance:         req.Advance,
		ChargeStore:     req.ChargeStore,
		Charge:          req.Charge,
		Meals:           req.Meals,
		Miscellaneous:   req.Miscellaneous,
		OtherDeductions: req.OtherDeductions,
	}

	saved, err := s.deductionRepo.Upsert(ctx, record)
	if err != nil {
		return payroll.DeductionResponse{}, fmt.Errorf("failed to upsert deduction: %w", err)
	}
	return mapDeductionToResponse(saved), nil
}

// ListBenefits implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListBenefits(ctx context.Context, employeeID string) ([]payroll.BenefitResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := s.benefitRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list benefits: %w", err)
	}

	responses := make([]payroll.BenefitResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapBenefitToResponse(record))
	}
	return responses, nil
}

// ListDeductions implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListDeductions(ctx context.Context, employeeID string) ([]payroll.DeductionResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := s.deductionRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}

	responses := make([]payroll.DeductionResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapDeductionToResponse(record))
	}
	return responses, nil
}

// CopyFromDefault implements payroll.PayrollService. For each employee it
// materializes the default benefit and deduction templates into the given
// cutoff, skipping employees that already have a period row or no template.
// Returns the number of rows created.
func (s *PayrollServiceImpl) CopyFromDefault(ctx context.Context, req payroll.CopyFromDefaultRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	cutoff := summary.PeriodType(req.Cutoff)
	copied := 0

	for _, employeeID := range req.EmployeeIDs {
		existing, err := s.benefitRepo.GetByEmployeePeriod(ctx, employeeID, req.Year, req.Month, cutoff)
		if err != nil {
			return copied, fmt.Errorf("failed to get benefit: %w", err)
		}
		if existing == nil {
			def, err := s.benefitRepo.GetDefault(ctx, employeeID, cutoff)
			if err != nil {
				return copied, fmt.Errorf("failed to get default benefit: %w", err)
			}
			if def != nil {
				row := *def
				row.ID = ""
				row.Year = req.Year
				row.Month = req.Month
				row.IsDefault = false
				if _, err := s.benefitRepo.Upsert(ctx, row); err != nil {
					return copied, fmt.Errorf("failed to copy benefit: %w", err)
				}
				copied++
			}
		}

		existingDed, err := s.deductionRepo.GetByEmployeePeriod(ctx, employeeID, req.Year, req.Month, cutoff)
		if err != nil {
			return copied, fmt.Errorf("failed to get deduction: %w", err)
		}
		if existingDed == nil {
			def, err := s.deductionRepo.GetDefault(ctx, employeeID, cutoff)
			if err != nil {
				return copied, fmt.Errorf("failed to get default deduction: %w", err)
			}
			if def != nil {
				row := *def
				row.ID = ""
				row.Year = req.Year
				row.Month = req.Month
				row.IsDefault = false
				if _, err := s.deductionRepo.Upsert(ctx, row); err != nil {
					return copied, fmt.Errorf("failed to copy deduction: %w", err)
				}
				copied++
			}
		}
	}

	return copied, nil
}

func (s *PayrollServiceImpl) getPayroll(ctx context.Context, id string) (payroll.FinalPayroll, error) {
	record, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, payroll.ErrFinalPayrollNotFound) {
			return payroll.FinalPayroll{}, payroll.ErrFinalPayrollNotFound
		}
		return payroll.FinalPayroll{}, fmt.Errorf("failed to get final payroll: %w", err)
	}
	return record, nil
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	str := t.Format(time.RFC3339)
	return &str
}

func mapPayrollToResponse(p payroll.FinalPayroll) payroll.PayrollResponse {
	return payroll.PayrollResponse{
		ID:           p.ID,
		SummaryID:    p.SummaryID,
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		Year:         p.Year,
		Month:        p.Month,
		PeriodType:   string(p.PeriodType),

		Department:   p.Department,
		JobTitle:     p.JobTitle,
		PayType:      string(p.PayType),
		BasicRate:    p.BasicRate,
		PayAllowance: p.PayAllowance,
		IsTaxable:    p.IsTaxable,

		DaysWorked:            p.DaysWorked,
		HoursWorked:           p.HoursWorked,
		LateUnderMinutes:      p.LateUnderMinutes,
		LateUnderHours:        p.LateUnderHours,
		OTRegularHours:        p.OTRegularHours,
		OTRestDayHours:        p.OTRestDayHours,
		NSDHours:              p.NSDHours,
		HolidayHours:          p.HolidayHours,
		OTRegularHolidayHours: p.OTRegularHolidayHours,
		OTSpecialHolidayHours: p.OTSpecialHolidayHours,
		TravelOrderHours:      p.TravelOrderHours,
		SLVLDays:              p.SLVLDays,
		RetroAmount:           p.RetroAmount,
		OffsetHours:           p.OffsetHours,
		TripCount:             p.TripCount,
		AbsenceDays:           p.AbsenceDays,
		OtherEarnings:         p.OtherEarnings,

		BasicPay:                  p.BasicPay,
		Allowances:                p.Allowances,
		LateUnderDeduction:        p.LateUnderDeduction,
		AbsenceDeduction:          p.AbsenceDeduction,
		OTRegularAmount:           p.OTRegularAmount,
		OTRestDayAmount:           p.OTRestDayAmount,
		OTSpecialHolidayAmount:    p.OTSpecialHolidayAmount,
		OTRegularHolidayAmount:    p.OTRegularHolidayAmount,
		OvertimePay:               p.OvertimePay,
		NSDAmount:                 p.NSDAmount,
		HolidayAmount:             p.HolidayAmount,
		TravelOrderAmount:         p.TravelOrderAmount,
		SLVLAmount:                p.SLVLAmount,
		OffsetAmount:              p.OffsetAmount,
		TripAmount:                p.TripAmount,
		PremiumPay:                p.PremiumPay,
		TotalCompanyDeductions:    p.TotalCompanyDeductions,
		TotalOtherDeductions:      p.TotalOtherDeductions,
		SSSContribution:           p.SSSContribution,
		PhilhealthContribution:    p.PhilhealthContribution,
		HDMFContribution:          p.HDMFContribution,
		TotalGovernmentDeductions: p.TotalGovernmentDeductions,
		TaxableIncome:             p.TaxableIncome,
		WithholdingTax:            p.WithholdingTax,
		GrossEarnings:             p.GrossEarnings,
		TotalDeductions:           p.TotalDeductions,
		NetPay:                    p.NetPay,

		Status:          string(p.Status),
		ApprovalStatus:  string(p.ApprovalStatus),
		CurrentApprover: string(payroll.CurrentApprover(p.Status, p.ApprovalStatus)),
		ApprovedBy:      p.ApprovedBy,
		ApprovedAt:      formatTimePtr(p.ApprovedAt),
		ApprovalRemarks: p.ApprovalRemarks,
		FinalizedBy:     p.FinalizedBy,
		FinalizedAt:     formatTimePtr(p.FinalizedAt),
		PaidBy:          p.PaidBy,
		PaidAt:          formatTimePtr(p.PaidAt),
	}
}

func mapBenefitToResponse(b payroll.Benefit) payroll.BenefitResponse {
	return payroll.BenefitResponse{
		ID:         b.ID,
		EmployeeID: b.EmployeeID,
		Year:       b.Year,
		Month:      b.Month,
		Cutoff:     string(b.Cutoff),
		IsDefault:  b.IsDefault,
		MFShares:   b.MFShares,
		SSSLoan:    b.SSSLoan,
		HDMFLoan:   b.HDMFLoan,
		HDMFPrem:   b.HDMFPrem,
		SSSPrem:    b.SSSPrem,
		Philhealth: b.Philhealth,
		Allowances: b.Allowances,
	}
}

func mapDeductionToResponse(d payroll.Deduction) payroll.DeductionResponse {
	return payroll.DeductionResponse{
		ID:              d.ID,
		EmployeeID:      d.EmployeeID,
		Year:            d.Year,
		Month:           d.Month,
		Cutoff:          string(d.Cutoff),
		IsDefault:       d.IsDefault,
		Advance:         d.Advance,
		ChargeStore:     d.ChargeStore,
		Charge:          d.Charge,
		Meals:           d.Meals,
		Miscellaneous:   d.Miscellaneous,
		OtherDeductions: d.OtherDeductions,
	}
}
