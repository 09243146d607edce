package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayType enum
type PayType string

const (
	PayTypeDaily   PayType = "daily"
	PayTypeHourly  PayType = "hourly"
	PayTypeMonthly PayType = "monthly"
)

// Employee - profile snapshot consumed by the payroll pipeline.
// Employees are provisioned by an upstream HR system; this service only reads them.
type Employee struct {
	ID           string
	Name         string
	Department   *string
	JobTitle     *string
	PayType      PayType
	BasicRate    decimal.Decimal
	PayAllowance decimal.Decimal
	IsTaxable    bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
