package summary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrweb-ph/payroll-backend-go/internal/domain/attendance"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/employee"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/payroll"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/summary"
	"github.com/hrweb-ph/payroll-backend-go/internal/pkg/database"
	"github.com/hrweb-ph/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type SummaryServiceImpl struct {
	db *database.DB
	summary.SummaryRepository
	attendance.AttendanceRepository
	employee.EmployeeRepository
	benefitRepo   payroll.BenefitRepository
	deductionRepo payroll.DeductionRepository
}

func NewSummaryService(
	db *database.DB,
	summaryRepo summary.SummaryRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	benefitRepo payroll.BenefitRepository,
	deductionRepo payroll.DeductionRepository,
) summary.SummaryService {
	return &SummaryServiceImpl{
		db:                   db,
		SummaryRepository:    summaryRepo,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		benefitRepo:          benefitRepo,
		deductionRepo:        deductionRepo,
	}
}

// GenerateSummary implements summary.SummaryService.
func (s *SummaryServiceImpl) GenerateSummary(ctx context.Context, req summary.GenerateSummaryRequest) (summary.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return summary.SummaryResponse{}, err
	}

	periodType := summary.PeriodType(req.PeriodType)

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return summary.SummaryResponse{}, err
	}

	existing, err := s.SummaryRepository.GetByEmployeePeriod(ctx, req.EmployeeID, req.Year, req.Month, periodType)
	if err != nil {
		return summary.SummaryResponse{}, fmt.Errorf("failed to check existing summary: %w", err)
	}
	if existing != nil && existing.Status != summary.SummaryStatusDraft {
		return summary.SummaryResponse{}, summary.ErrSummaryNotDraft
	}

	from, to := summary.PeriodBounds(req.Year, time.Month(req.Month), periodType)

	// Only not-yet-posted rows are folded; posted ones already belong to a
	// payroll run. Zero qualifying rows still produces an all-zero summary.
	records, err := s.AttendanceRepository.ListForPeriod(ctx, req.EmployeeID, from, to)
	if err != nil {
		return summary.SummaryResponse{}, fmt.Errorf("failed to load attendance for period: %w", err)
	}

	totals := Aggregate(records)

	benefit, err := s.lookupBenefit(ctx, req.EmployeeID, req.Year, req.Month, periodType)
	if err != nil {
		return summary.SummaryResponse{}, err
	}
	deduction, err := s.lookupDeduction(ctx, req.EmployeeID, req.Year, req.Month, periodType)
	if err != nil {
		return summary.SummaryResponse{}, err
	}

	record := summary.PeriodSummary{
		EmployeeID: req.EmployeeID,
		Year:       req.Year,
		Month:      req.Month,
		PeriodType: periodType,

		Advance:         deduction.Advance,
		ChargeStore:     deduction.ChargeStore,
		Charge:          deduction.Charge,
		Meals:           deduction.Meals,
		Miscellaneous:   deduction.Miscellaneous,
		OtherDeductions: deduction.OtherDeductions,
		MFShares:        benefit.MFShares,
		MFLoan:          deduction.Advance,
		SSSLoan:         benefit.SSSLoan,
		HDMFLoan:        benefit.HDMFLoan,
		HDMFPrem:        benefit.HDMFPrem,
		SSSPrem:         benefit.SSSPrem,
		Philhealth:      benefit.Philhealth,
		Allowances:      benefit.Allowances,

		Status: summary.SummaryStatusDraft,
	}
	applyTotals(&record, totals)

	var saved summary.PeriodSummary
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		var txErr error
		saved, txErr = s.SummaryRepository.Upsert(txCtx, record)
		return txErr
	})
	if err != nil {
		return summary.SummaryResponse{}, fmt.Errorf("failed to save period summary: %w", err)
	}

	return mapSummaryToResponse(saved), nil
}

// PostSummary implements summary.SummaryService.
func (s *SummaryServiceImpl) PostSummary(ctx context.Context, summaryID string, actorID string) (summary.SummaryResponse, error) {
	record, err := s.SummaryRepository.GetByID(ctx, summaryID)
	if err != nil {
		if errors.Is(err, summary.ErrSummaryNotFound) {
			return summary.SummaryResponse{}, summary.ErrSummaryNotFound
		}
		return summary.SummaryResponse{}, fmt.Errorf("failed to get summary: %w", err)
	}

	if record.Status == summary.SummaryStatusLocked {
		return summary.SummaryResponse{}, summary.ErrSummaryLocked
	}
	if record.Status != summary.SummaryStatusDraft {
		return summary.SummaryResponse{}, summary.ErrSummaryNotDraft
	}

	from, to := summary.PeriodBounds(record.Year, time.Month(record.Month), record.PeriodType)
	now := time.Now()

	// Posting the summary and consuming its attendance rows is one unit of
	// work; a half-posted period would double-count on the next run. Totals
	// are refolded here so rows recorded after generation still contribute
	// to the snapshot they get consumed by.
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		records, txErr := s.AttendanceRepository.ListForPeriod(txCtx, record.EmployeeID, from, to)
		if txErr != nil {
			return fmt.Errorf("failed to load attendance for period: %w", txErr)
		}
		applyTotals(&record, Aggregate(records))
		if _, txErr := s.SummaryRepository.Upsert(txCtx, record); txErr != nil {
			return fmt.Errorf("failed to refresh summary totals: %w", txErr)
		}

		if txErr := s.AttendanceRepository.MarkPosted(txCtx, record.EmployeeID, from, to); txErr != nil {
			return fmt.Errorf("failed to mark attendance posted: %w", txErr)
		}
		return s.SummaryRepository.MarkPosted(txCtx, summaryID, actorID, now)
	})
	if err != nil {
		return summary.SummaryResponse{}, err
	}

	updated, err := s.SummaryRepository.GetByID(ctx, summaryID)
	if err != nil {
		return summary.SummaryResponse{}, fmt.Errorf("failed to get updated summary: %w", err)
	}

	return mapSummaryToResponse(updated), nil
}

// LockSummary implements summary.SummaryService.
func (s *SummaryServiceImpl) LockSummary(ctx context.Context, summaryID string, actorID string) (summary.SummaryResponse, error) {
	record, err := s.SummaryRepository.GetByID(ctx, summaryID)
	if err != nil {
		if errors.Is(err, summary.ErrSummaryNotFound) {
			return summary.SummaryResponse{}, summary.ErrSummaryNotFound
		}
		return summary.SummaryResponse{}, fmt.Errorf("failed to get summary: %w", err)
	}

	if record.Status != summary.SummaryStatusPosted {
		return summary.SummaryResponse{}, summary.ErrSummaryNotPosted
	}

	if err := s.SummaryRepository.MarkLocked(ctx, summaryID, actorID, time.Now()); err != nil {
		return summary.SummaryResponse{}, fmt.Errorf("failed to lock summary: %w", err)
	}

	updated, err := s.SummaryRepository.GetByID(ctx, summaryID)
	if err != nil {
		return summary.SummaryResponse{}, fmt.Errorf("failed to get updated summary: %w", err)
	}

	return mapSummaryToResponse(updated), nil
}

// GetSummary implements summary.SummaryService.
func (s *SummaryServiceImpl) GetSummary(ctx context.Context, id string) (summary.SummaryResponse, error) {
	record, err := s.SummaryRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, summary.ErrSummaryNotFound) {
			return summary.SummaryResponse{}, summary.ErrSummaryNotFound
		}
		return summary.SummaryResponse{}, fmt.Errorf("failed to get summary: %w", err)
	}

	return mapSummaryToResponse(record), nil
}

// ListSummaries implements summary.SummaryService.
func (s *SummaryServiceImpl) ListSummaries(ctx context.Context, filter summary.SummaryFilter) (summary.ListSummaryResponse, error) {
	records, total, err := s.SummaryRepository.List(ctx, filter)
	if err != nil {
		return summary.ListSummaryResponse{}, fmt.Errorf("failed to list summaries: %w", err)
	}

	responses := make([]summary.SummaryResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapSummaryToResponse(record))
	}

	return summary.ListSummaryResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Summaries:  responses,
	}, nil
}

// applyTotals writes a fold of attendance records onto the summary's
// aggregate columns. Pass-through financials are left alone.
func applyTotals(record *summary.PeriodSummary, totals Totals) {
	record.DaysWorked = totals.DaysWorked
	record.HoursWorked = totals.HoursWorked
	record.OTHours = totals.OTHours
	record.OffDays = totals.OffDays
	record.LateUnderMinutes = totals.LateUnderMinutes
	record.NSDHours = totals.NSDHours
	record.SLVLDays = totals.SLVLDays
	record.Retro = totals.Retro
	record.TravelOrderHours = totals.TravelOrderHours
	record.HolidayHours = totals.HolidayHours
	record.OTRegHolidayHours = totals.OTRegHolidayHours
	record.OTSpecialHolidayHours = totals.OTSpecialHolidayHours
	record.OffsetHours = totals.OffsetHours
	record.TripCount = totals.TripCount
	record.HasCT = totals.HasCT
	record.HasCS = totals.HasCS
	record.HasOB = totals.HasOB
}

// lookupBenefit resolves the benefit inputs for a cutoff: the period row
// when present, the employee's default template otherwise, zero amounts
// when neither exists.
func (s *SummaryServiceImpl) lookupBenefit(ctx context.Context, employeeID string, year, month int, cutoff summary.PeriodType) (payroll.Benefit, error) {
	b, err := s.benefitRepo.GetByEmployeePeriod(ctx, employeeID, year, month, cutoff)
	if err != nil {
		return payroll.Benefit{}, fmt.Errorf("failed to get benefit: %w", err)
	}
	if b != nil {
		return *b, nil
	}
	def, err := s.benefitRepo.GetDefault(ctx, employeeID, cutoff)
	if err != nil {
		return payroll.Benefit{}, fmt.Errorf("failed to get default benefit: %w", err)
	}
	if def != nil {
		return *def, nil
	}
	return payroll.Benefit{}, nil
}

func (s *SummaryServiceImpl) lookupDeduction(ctx context.Context, employeeID string, year, month int, cutoff summary.PeriodType) (payroll.Deduction, error) {
	d, err := s.deductionRepo.GetByEmployeePeriod(ctx, employeeID, year, month, cutoff)
	if err != nil {
		return payroll.Deduction{}, fmt.Errorf("failed to get deduction: %w", err)
	}
	if d != nil {
		return *d, nil
	}
	def, err := s.deductionRepo.GetDefault(ctx, employeeID, cutoff)
	if err != nil {
		return payroll.Deduction{}, fmt.Errorf("failed to get default deduction: %w", err)
	}
	if def != nil {
		return *def, nil
	}
	return payroll.Deduction{}, nil
}

func mapSummaryToResponse(s summary.PeriodSummary) summary.SummaryResponse {
	var employeeName string
	if s.EmployeeName != nil {
		employeeName = *s.EmployeeName
	}

	var postedAtStr *string
	if s.PostedAt != nil {
		str := s.PostedAt.Format(time.RFC3339)
		postedAtStr = &str
	}
	var lockedAtStr *string
	if s.LockedAt != nil {
		str := s.LockedAt.Format(time.RFC3339)
		lockedAtStr = &str
	}

	return summary.SummaryResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: employeeName,
		Year:         s.Year,
		Month:        s.Month,
		PeriodType:   string(s.PeriodType),

		DaysWorked:            s.DaysWorked,
		HoursWorked:           s.HoursWorked,
		OTHours:               s.OTHours,
		OffDays:               s.OffDays,
		LateUnderMinutes:      s.LateUnderMinutes,
		NSDHours:              s.NSDHours,
		SLVLDays:              s.SLVLDays,
		Retro:                 s.Retro,
		TravelOrderHours:      s.TravelOrderHours,
		HolidayHours:          s.HolidayHours,
		OTRegHolidayHours:     s.OTRegHolidayHours,
		OTSpecialHolidayHours: s.OTSpecialHolidayHours,
		OffsetHours:           s.OffsetHours,
		TripCount:             s.TripCount,
		HasCT:                 s.HasCT,
		HasCS:                 s.HasCS,
		HasOB:                 s.HasOB,

		Advance:         s.Advance,
		ChargeStore:     s.ChargeStore,
		Charge:          s.Charge,
		Meals:           s.Meals,
		Miscellaneous:   s.Miscellaneous,
		OtherDeductions: s.OtherDeductions,
		MFShares:        s.MFShares,
		MFLoan:          s.MFLoan,
		SSSLoan:         s.SSSLoan,
		HDMFLoan:        s.HDMFLoan,
		HDMFPrem:        s.HDMFPrem,
		SSSPrem:         s.SSSPrem,
		Philhealth:      s.Philhealth,
		Allowances:      s.Allowances,

		Status:   string(s.Status),
		PostedBy: s.PostedBy,
		PostedAt: postedAtStr,
		LockedBy: s.LockedBy,
		LockedAt: lockedAtStr,
	}
}
