package payroll

import (
	"time"

	"github.com/hrweb-ph/payroll-backend-go/internal/domain/employee"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/payroll"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/summary"
	"github.com/shopspring/decimal"
)

var (
	two    = decimal.NewFromInt(2)
	eight  = decimal.NewFromInt(8)
	thirty = decimal.NewFromInt(30)
	sixty  = decimal.NewFromInt(60)

	otRegularRate        = decimal.NewFromFloat(1.25)
	otRestDayRate        = decimal.NewFromFloat(1.30)
	otSpecialHolidayRate = decimal.NewFromFloat(1.30)
	otRegularHolidayRate = decimal.NewFromInt(2)

	nsdRate  = decimal.NewFromFloat(0.10)
	tripRate = decimal.NewFromInt(50)
)

// Calculate populates every derived field of a final payroll from its
// inputs, in a fixed order: later steps read earlier results. Running it
// twice on unchanged inputs yields identical output, which is what makes
// recalculation after a manual adjustment safe.
func Calculate(p *payroll.FinalPayroll) {
	hourlyRate := p.BasicRate.Div(eight)

	// 1. Basic pay
	switch p.PayType {
	case employee.PayTypeHourly:
		p.BasicPay = p.BasicRate.Mul(p.HoursWorked)
	case employee.PayTypeMonthly:
		expected := summary.ExpectedDays(p.Year, time.Month(p.Month), p.PeriodType)
		p.BasicPay = p.BasicRate.Div(thirty).Mul(decimal.NewFromInt(int64(expected)))
	default:
		// daily, and the fallback for unknown pay types
		p.BasicPay = p.BasicRate.Mul(p.DaysWorked)
	}

	p.Allowances = p.PayAllowance
	p.LateUnderHours = decimal.NewFromInt(int64(p.LateUnderMinutes)).Div(sixty)

	p.LateUnderDeduction = decimal.Zero
	if p.LateUnderHours.IsPositive() {
		p.LateUnderDeduction = hourlyRate.Mul(p.LateUnderHours)
	}
	p.AbsenceDeduction = decimal.Zero
	if p.AbsenceDays.IsPositive() {
		p.AbsenceDeduction = p.BasicRate.Mul(p.AbsenceDays)
	}

	// 2. Overtime pay
	p.OTRegularAmount = p.OTRegularHours.Mul(hourlyRate).Mul(otRegularRate)
	p.OTRestDayAmount = p.OTRestDayHours.Mul(hourlyRate).Mul(otRestDayRate)
	p.OTSpecialHolidayAmount = p.OTSpecialHolidayHours.Mul(hourlyRate).Mul(otSpecialHolidayRate)
	p.OTRegularHolidayAmount = p.OTRegularHolidayHours.Mul(hourlyRate).Mul(otRegularHolidayRate)
	p.OvertimePay = p.OTRegularAmount.
		Add(p.OTRestDayAmount).
		Add(p.OTSpecialHolidayAmount).
		Add(p.OTRegularHolidayAmount)

	// 3. Premium pay. SLVL and trip amounts are computed here but kept out
	// of the premium subtotal; they still feed gross earnings in step 7.
	p.NSDAmount = p.NSDHours.Mul(hourlyRate).Mul(nsdRate)
	p.HolidayAmount = p.HolidayHours.Mul(hourlyRate)
	p.TravelOrderAmount = p.TravelOrderHours.Mul(hourlyRate)
	p.SLVLAmount = p.SLVLDays.Mul(p.BasicRate)
	p.OffsetAmount = p.OffsetHours.Mul(hourlyRate)
	p.TripAmount = p.TripCount.Mul(tripRate)
	p.PremiumPay = p.NSDAmount.
		Add(p.HolidayAmount).
		Add(p.TravelOrderAmount).
		Add(p.OffsetAmount)

	// 4. Company and other deductions
	p.TotalCompanyDeductions = p.MFShares.
		Add(p.MFLoan).
		Add(p.SSSLoan).
		Add(p.HDMFLoan)
	p.TotalOtherDeductions = p.AdvanceDeduction.
		Add(p.ChargeStore).
		Add(p.ChargeDeduction).
		Add(p.MealsDeduction).
		Add(p.MiscellaneousDeduction).
		Add(p.OtherDeductions)

	// 5. Government contributions, approximated from the doubled
	// half-month basic pay
	if p.IsTaxable {
		monthlyBasic := p.BasicPay.Mul(two)
		p.SSSContribution, p.PhilhealthContribution, p.HDMFContribution = governmentContributions(monthlyBasic)
		p.TotalGovernmentDeductions = p.SSSContribution.
			Add(p.PhilhealthContribution).
			Add(p.HDMFContribution)
	} else {
		p.SSSContribution = decimal.Zero
		p.PhilhealthContribution = decimal.Zero
		p.HDMFContribution = decimal.Zero
		p.TotalGovernmentDeductions = decimal.Zero
	}

	// 6. Withholding tax
	if p.IsTaxable {
		p.TaxableIncome = p.BasicPay.
			Add(p.OvertimePay).
			Add(p.PremiumPay).
			Add(p.Allowances).
			Add(p.RetroAmount).
			Add(p.OtherEarnings).
			Sub(p.TotalGovernmentDeductions).
			Sub(p.AbsenceDeduction).
			Sub(p.LateUnderDeduction)
		p.WithholdingTax = withholdingTax(p.TaxableIncome.Mul(two))
	} else {
		p.TaxableIncome = decimal.Zero
		p.WithholdingTax = decimal.Zero
	}

	// 7. Totals
	p.GrossEarnings = p.BasicPay.
		Add(p.OvertimePay).
		Add(p.PremiumPay).
		Add(p.Allowances).
		Add(p.RetroAmount).
		Add(p.SLVLAmount).
		Add(p.TripAmount).
		Add(p.OtherEarnings)
	p.TotalDeductions = p.TotalGovernmentDeductions.
		Add(p.TotalCompanyDeductions).
		Add(p.TotalOtherDeductions).
		Add(p.WithholdingTax).
		Add(p.AbsenceDeduction).
		Add(p.LateUnderDeduction)
	p.NetPay = p.GrossEarnings.Sub(p.TotalDeductions)
	if p.NetPay.IsNegative() {
		p.NetPay = decimal.Zero
	}
}
