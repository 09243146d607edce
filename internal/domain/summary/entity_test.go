package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodType_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, PeriodFirstHalf.Valid())
	assert.True(t, PeriodSecondHalf.Valid())
	assert.False(t, PeriodType("monthly").Valid())
	assert.False(t, PeriodType("").Valid())
}

func TestPeriodBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		year      int
		month     time.Month
		period    PeriodType
		wantFrom  string
		wantTo    string
	}{
		{"first half", 2025, time.March, PeriodFirstHalf, "2025-03-01", "2025-03-15"},
		{"second half 31-day month", 2025, time.March, PeriodSecondHalf, "2025-03-16", "2025-03-31"},
		{"second half 30-day month", 2025, time.April, PeriodSecondHalf, "2025-04-16", "2025-04-30"},
		{"second half february", 2025, time.February, PeriodSecondHalf, "2025-02-16", "2025-02-28"},
		{"second half leap february", 2024, time.February, PeriodSecondHalf, "2024-02-16", "2024-02-29"},
		{"second half december wraps the year", 2025, time.December, PeriodSecondHalf, "2025-12-16", "2025-12-31"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			from, to := PeriodBounds(tt.year, tt.month, tt.period)

			assert.Equal(t, tt.wantFrom, from.Format("2006-01-02"))
			assert.Equal(t, tt.wantTo, to.Format("2006-01-02"))
		})
	}
}

func TestExpectedDays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 15, ExpectedDays(2025, time.March, PeriodFirstHalf))
	assert.Equal(t, 16, ExpectedDays(2025, time.March, PeriodSecondHalf))
	assert.Equal(t, 15, ExpectedDays(2025, time.April, PeriodSecondHalf))
	assert.Equal(t, 13, ExpectedDays(2025, time.February, PeriodSecondHalf))
	assert.Equal(t, 14, ExpectedDays(2024, time.February, PeriodSecondHalf))
}
