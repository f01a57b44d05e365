package audit

import "time"

// BalanceAuditEntry - Append-only record of a change to an employee's
// balance, standard pay or worked hours. Entries are never updated or
// deleted; a mistake is corrected by appending a compensating entry.
type BalanceAuditEntry struct {
	ID          string
	EmployeeID  string
	Information string
	CreatedBy   string
	CreatedAt   time.Time
}
