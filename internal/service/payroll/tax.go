package payroll

import "github.com/shopspring/decimal"

// Semi-monthly withholding follows the BIR revised withholding table,
// evaluated against the annualized-to-monthly taxable income. Bracket
// amounts are monthly; the result is halved back to the half-month period.
var (
	taxBracket1Cap = decimal.NewFromInt(20833)
	taxBracket2Cap = decimal.NewFromInt(33333)
	taxBracket3Cap = decimal.NewFromInt(66667)
	taxBracket4Cap = decimal.NewFromInt(166667)
	taxBracket5Cap = decimal.NewFromInt(666667)

	taxBracket3Base = decimal.NewFromInt(1875)
	taxBracket4Base = decimal.NewFromFloat(8541.80)
	taxBracket5Base = decimal.NewFromFloat(33541.80)
	taxBracket6Base = decimal.NewFromFloat(183541.80)

	rate15 = decimal.NewFromFloat(0.15)
	rate20 = decimal.NewFromFloat(0.20)
	rate25 = decimal.NewFromFloat(0.25)
	rate30 = decimal.NewFromFloat(0.30)
	rate35 = decimal.NewFromFloat(0.35)

	sssRate        = decimal.NewFromFloat(0.045)
	sssCeiling     = decimal.NewFromInt(1000)
	philhealthRate = decimal.NewFromFloat(0.015)
	philhealthCap  = decimal.NewFromInt(2000)
	hdmfRate       = decimal.NewFromFloat(0.02)
	hdmfCeiling    = decimal.NewFromInt(100)
)

func withholdingTax(monthlyTaxable decimal.Decimal) decimal.Decimal {
	switch {
	case monthlyTaxable.LessThanOrEqual(taxBracket1Cap):
		return decimal.Zero
	case monthlyTaxable.LessThanOrEqual(taxBracket2Cap):
		return monthlyTaxable.Sub(taxBracket1Cap).Mul(rate15).Div(two)
	case monthlyTaxable.LessThanOrEqual(taxBracket3Cap):
		return taxBracket3Base.Add(monthlyTaxable.Sub(taxBracket2Cap).Mul(rate20)).Div(two)
	case monthlyTaxable.LessThanOrEqual(taxBracket4Cap):
		return taxBracket4Base.Add(monthlyTaxable.Sub(taxBracket3Cap).Mul(rate25)).Div(two)
	case monthlyTaxable.LessThanOrEqual(taxBracket5Cap):
		return taxBracket5Base.Add(monthlyTaxable.Sub(taxBracket4Cap).Mul(rate30)).Div(two)
	default:
		return taxBracket6Base.Add(monthlyTaxable.Sub(taxBracket5Cap).Mul(rate35)).Div(two)
	}
}

// governmentContributions returns the employee share of SSS, PhilHealth and
// Pag-IBIG for one half-month period, derived from the doubled basic pay.
// Each contribution is capped at its statutory ceiling.
func governmentContributions(monthlyBasic decimal.Decimal) (sss, philhealth, hdmf decimal.Decimal) {
	sss = decimalMin(monthlyBasic.Mul(sssRate), sssCeiling)
	philhealth = decimalMin(monthlyBasic.Mul(philhealthRate), philhealthCap)
	hdmf = decimalMin(monthlyBasic.Mul(hdmfRate), hdmfCeiling)
	return sss, philhealth, hdmf
}

func decimalMin(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}
