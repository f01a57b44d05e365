package audit

import "context"

type TrailService interface {
	ListByEmployee(ctx context.Context, employeeID string, page, limit int) ([]BalanceAuditEntryResponse, int64, error)
}
