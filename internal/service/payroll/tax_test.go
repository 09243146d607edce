package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWithholdingTax_Brackets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		monthly string
		want    string
	}{
		{"zero income", "0", "0"},
		{"first bracket cap", "20833", "0"},
		{"second bracket", "25000", "312.525"},
		{"second bracket cap", "33333", "937.5"},
		{"third bracket", "50000", "2604.2"},
		{"fourth bracket", "100000", "8437.525"},
		{"fifth bracket", "200000", "21770.85"},
		{"top bracket", "700000", "97604.175"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := withholdingTax(dec(tt.monthly))

			assert.True(t, got.Equal(dec(tt.want)), "want %s, got %s", tt.want, got)
		})
	}
}

func TestWithholdingTax_BracketBoundariesAreContinuousEnough(t *testing.T) {
	t.Parallel()

	// One peso past a cap must never tax less than the cap itself
	caps := []string{"20833", "33333", "66667", "166667", "666667"}
	for _, cap := range caps {
		atCap := withholdingTax(dec(cap))
		pastCap := withholdingTax(dec(cap).Add(decimal.NewFromInt(1)))
		assert.True(t, pastCap.GreaterThanOrEqual(atCap), "cap %s: %s then %s", cap, atCap, pastCap)
	}
}

func TestGovernmentContributions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		monthlyBasic   string
		wantSSS        string
		wantPhilhealth string
		wantHDMF       string
	}{
		{"small salary", "10000", "450", "150", "100"},
		{"mid salary hits hdmf ceiling", "20000", "900", "300", "100"},
		{"sss ceiling", "25000", "1000", "375", "100"},
		{"all ceilings", "200000", "1000", "2000", "100"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sss, philhealth, hdmf := governmentContributions(dec(tt.monthlyBasic))

			assert.True(t, sss.Equal(dec(tt.wantSSS)), "sss: want %s, got %s", tt.wantSSS, sss)
			assert.True(t, philhealth.Equal(dec(tt.wantPhilhealth)), "philhealth: want %s, got %s", tt.wantPhilhealth, philhealth)
			assert.True(t, hdmf.Equal(dec(tt.wantHDMF)), "hdmf: want %s, got %s", tt.wantHDMF, hdmf)
		})
	}
}
