package timesheet

import "context"

// ApprovalRepository is the ledger's view of the timesheet subsystem: it
// only needs to know whether an approval is still outstanding for an
// employee within a pay period.
type ApprovalRepository interface {
	HasPendingApproval(ctx context.Context, employeeID, periodID string) (bool, error)
}
