package audit

import "context"

// TrailRepository is deliberately insert-and-read only: the audit trail has
// no update or delete operation anywhere in its contract.
type TrailRepository interface {
	Append(ctx context.Context, entry BalanceAuditEntry) (BalanceAuditEntry, error)
	ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]BalanceAuditEntry, int64, error)
}
