package payroll

import (
	"testing"

	"github.com/hrweb-ph/payroll-backend-go/internal/domain/employee"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/payroll"
	"github.com/hrweb-ph/payroll-backend-go/internal/domain/summary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "%s: want %s, got %s", field, want, got)
}

// dailyPayroll is a minimal daily-rated payroll with ten worked days and no
// taxes, overtime or deductions.
func dailyPayroll() payroll.FinalPayroll {
	return payroll.FinalPayroll{
		Year:       2025,
		Month:      3,
		PeriodType: summary.PeriodFirstHalf,
		PayType:    employee.PayTypeDaily,
		BasicRate:  dec("500"),
		DaysWorked: dec("10"),
	}
}

func TestCalculate_DailyRate(t *testing.T) {
	t.Parallel()

	p := dailyPayroll()
	Calculate(&p)

	assertDecimal(t, "5000", p.BasicPay, "basic_pay")
	assertDecimal(t, "5000", p.GrossEarnings, "gross_earnings")
	assertDecimal(t, "0", p.TotalDeductions, "total_deductions")
	assertDecimal(t, "5000", p.NetPay, "net_pay")
}

func TestCalculate_HourlyRate(t *testing.T) {
	t.Parallel()

	p := dailyPayroll()
	p.PayType = employee.PayTypeHourly
	p.BasicRate = dec("100")
	p.HoursWorked = dec("80")

	Calculate(&p)

	assertDecimal(t, "8000", p.BasicPay, "basic_pay")
}

func TestCalculate_MonthlyRate(t *testing.T) {
	t.Parallel()

	p := dailyPayroll()
	p.PayType = employee.PayTypeMonthly
	p.BasicRate = dec("30000")

	Calculate(&p)

	// 30000 / 30 * 15 expected days of the first half
	assertDecimal(t, "15000", p.BasicPay, "basic_pay")
}

func TestCalculate_MonthlyRateSecondHalf(t *testing.T) {
	t.Parallel()

	p := dailyPayroll()
	p.PayType = employee.PayTypeMonthly
	p.BasicRate = dec("30000")
	p.Month = 2
	p.PeriodType = summary.PeriodSecondHalf

	Calculate(&p)

	// February 2025 second half covers days 16-28, 13 expected days
	assertDecimal(t, "13000", p.BasicPay, "basic_pay")
}

func TestCalculate_UnknownPayTypeFallsBackToDaily(t *testing.T) {
	t.Parallel()

	p := dailyPayroll()
	p.PayType = employee.PayType("weekly")

	Calculate(&p)

	assertDecimal(t, "5000", p.BasicPay, "basic_pay")
}

func TestCalculate_AllowanceComesFromProfile(t *testing.T) {
	t.Parallel()

	p := dailyPayroll()
	p.PayAllowance = dec("750")
	// Whatever was seeded from the benefit row is replaced
	p.Allowances = dec("9999")

	Calculate(&p)

	assertDecimal(t, "750", p.Allowances, "allowances")
	assertDecimal(t, "5750", p.GrossEarnings, "gross_earnings")
}

func TestCalculate_LateUnderDeduction(t *testing.T) {
	t.Parallel()

	p := dailyPayroll()
	p.LateUnderMinutes = 60

	Calculate(&p)

	assertDecimal(t, "1", p.LateUnderHours, "late_under_hours")
	// one hour at the 500/8 hourly rate
	assertDecimal(t, "62.5", p.LateUnderDeduction, "late_under_deduction")
	assertDecimal(t, "4937.5", p.NetPay, "net_pay")
}

func TestCalculate_AbsenceDeduction(t *testing.T) {
	t.Parallel()

	p := dailyPayroll()
	p.AbsenceDays = dec("2")

	Calculate(&p)

	assertDecimal(t, "1000", p.AbsenceDeduction, "absence_deduction")
	assertDecimal(t, "4000", p.NetPay, "net_pay")
}

func TestCalculate_OvertimeTiers(t *testing.T) {
	t.Parallel()

	p := dailyPayroll()
	p.BasicRate = dec("400") // hourly rate 50
	p.OTRegularHours = dec("4")
	p.OTRestDayHours = dec("2")
	p.OTSpecialHolidayHours = dec("1")
	p.OTRegularHolidayHours = dec("2")

	Calculate(&p)

	assertDecimal(t, "250", p.OTRegularAmount, "ot_regular_amount")
	assertDecimal(t, "130", p.OTRestDayAmount, "ot_rest_day_amount")
	assertDecimal(t, "65", p.OTSpecialHolidayAmount, "ot_special_holiday_amount")
	assertDecimal(t, "200", p.OTRegularHolidayAmount, "ot_regular_holiday_amount")
	assertDecimal(t, "645", p.OvertimePay, "overtime_pay")
}

func TestCalculate_PremiumComposition(t *testing.T) {
	t.Parallel()

	p := dailyPayroll()
	p.BasicRate = dec("400") // hourly rate 50
	p.NSDHours = dec("8")
	p.HolidayHours = dec("8")
	p.TravelOrderHours = dec("2")
	p.OffsetHours = dec("1")
	p.SLVLDays = dec("1")
	p.TripCount = dec("2")

	Calculate(&p)

	assertDecimal(t, "40", p.NSDAmount, "nsd_amount")
	assertDecimal(t, "400", p.HolidayAmount, "holiday_amount")
	assertDecimal(t, "100", p.TravelOrderAmount, "travel_order_amount")
	assertDecimal(t, "50", p.OffsetAmount, "offset_amount")
	assertDecimal(t, "400", p.SLVLAmount, "slvl_amount")
	assertDecimal(t, "100", p.TripAmount, "trip_amount")

	// SLVL and trip amounts stay out of the premium subtotal
	assertDecimal(t, "590", p.PremiumPay, "premium_pay")

	// but both still land in gross earnings
	// basic 4000 + premium 590 + slvl 400 + trip 100
	assertDecimal(t, "5090", p.GrossEarnings, "gross_earnings")
}

func TestCalculate_GovernmentContributions(t *testing.T) {
	t.Parallel()

	p := dailyPayroll()
	p.IsTaxable = true

	Calculate(&p)

	// monthly basic 10000
	assertDecimal(t, "450", p.SSSContribution, "sss_contribution")
	assertDecimal(t, "150", p.PhilhealthContribution, "philhealth_contribution")
	assertDecimal(t, "100", p.HDMFContribution, "hdmf_contribution")
	assertDecimal(t, "700", p.TotalGovernmentDeductions, "total_government_deductions")

	// taxable income 4300, monthly 8600, below the first bracket cap
	assertDecimal(t, "4300", p.TaxableIncome, "taxable_income")
	assertDecimal(t, "0", p.WithholdingTax, "withholding_tax")
	assertDecimal(t, "4300", p.NetPay, "net_pay")
}

func TestCalculate_GovernmentCeilings(t *testing.T) {
	t.Parallel()

	p := dailyPayroll()
	p.IsTaxable = true
	p.BasicRate = dec("10000") // monthly basic 200000

	Calculate(&p)

	assertDecimal(t, "1000", p.SSSContribution, "sss_contribution")
	assertDecimal(t, "2000", p.PhilhealthContribution, "philhealth_contribution")
	assertDecimal(t, "100", p.HDMFContribution, "hdmf_contribution")
}

func TestCalculate_NonTaxableSkipsGovernmentAndTax(t *testing.T) {
	t.Parallel()

	p := dailyPayroll()
	p.IsTaxable = false
	p.BasicRate = dec("10000")

	Calculate(&p)

	assertDecimal(t, "0", p.TotalGovernmentDeductions, "total_government_deductions")
	assertDecimal(t, "0", p.TaxableIncome, "taxable_income")
	assertDecimal(t, "0", p.WithholdingTax, "withholding_tax")
	assertDecimal(t, "100000", p.NetPay, "net_pay")
}

func TestCalculate_CompanyAndOtherDeductions(t *testing.T) {
	t.Parallel()

	p := dailyPayroll()
	p.MFShares = dec("100")
	p.MFLoan = dec("200")
	p.SSSLoan = dec("300")
	p.HDMFLoan = dec("50")
	p.AdvanceDeduction = dec("200")
	p.ChargeStore = dec("75")
	p.ChargeDeduction = dec("25")
	p.MealsDeduction = dec("60")
	p.MiscellaneousDeduction = dec("40")
	p.OtherDeductions = dec("10")

	Calculate(&p)

	assertDecimal(t, "650", p.TotalCompanyDeductions, "total_company_deductions")
	assertDecimal(t, "410", p.TotalOtherDeductions, "total_other_deductions")
	assertDecimal(t, "3940", p.NetPay, "net_pay")
}

func TestCalculate_NetPayFloorsAtZero(t *testing.T) {
	t.Parallel()

	p := dailyPayroll()
	p.DaysWorked = dec("1")
	p.OtherDeductions = dec("10000")

	Calculate(&p)

	assertDecimal(t, "500", p.GrossEarnings, "gross_earnings")
	assertDecimal(t, "0", p.NetPay, "net_pay")
}

func TestCalculate_Idempotent(t *testing.T) {
	t.Parallel()

	p := dailyPayroll()
	p.IsTaxable = true
	p.PayAllowance = dec("500")
	p.LateUnderMinutes = 30
	p.OTRegularHours = dec("3")
	p.NSDHours = dec("8")
	p.MFShares = dec("100")

	Calculate(&p)
	first := p
	Calculate(&p)

	assert.True(t, first.GrossEarnings.Equal(p.GrossEarnings))
	assert.True(t, first.TotalDeductions.Equal(p.TotalDeductions))
	assert.True(t, first.NetPay.Equal(p.NetPay))
	assert.True(t, first.TaxableIncome.Equal(p.TaxableIncome))
	assert.True(t, first.WithholdingTax.Equal(p.WithholdingTax))
}
