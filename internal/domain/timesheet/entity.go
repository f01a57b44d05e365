package timesheet

import "time"

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// Approval - One timesheet approval request for an employee within a pay
// period. The ledger blocks finalization while one is still pending.
type Approval struct {
	ID         string
	EmployeeID string
	PeriodID   string
	Status     ApprovalStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
