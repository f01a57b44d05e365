package audit

import "time"

type BalanceAuditEntryResponse struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	Information string    `json:"information"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewBalanceAuditEntryResponse(e BalanceAuditEntry) BalanceAuditEntryResponse {
	return BalanceAuditEntryResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		Information: e.Information,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
	}
}
