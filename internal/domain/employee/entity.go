package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// Employee - Directory record plus the compensation fields the payroll
// ledger reads and mutates. BalanceAmount is the running balance the
// ledger settles against; every change to the three compensation fields
// leaves a trace in the balance audit trail.
type Employee struct {
	ID                string
	EmployeeCode      string
	FullName          string
	EmploymentStatus  EmploymentStatus
	BalanceAmount     decimal.Decimal
	StandardPayAmount decimal.Decimal
	HoursWorked       decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
