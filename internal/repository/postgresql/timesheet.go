package postgresql

import (
	"context"
	"fmt"

	"github.com/asifshaikgit/workforce-sub004/internal/domain/timesheet"
	"github.com/asifshaikgit/workforce-sub004/internal/pkg/database"
)

type approvalRepository struct {
	db *database.DB
}

func NewApprovalRepository(db *database.DB) timesheet.ApprovalRepository {
	return &approvalRepository{db: db}
}

func (r *approvalRepository) HasPendingApproval(ctx context.Context, employeeID, periodID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM timesheet_approvals
			WHERE employee_id = $1 AND period_id = $2 AND status = $3
		)
	`

	var pending bool
	err := q.QueryRow(ctx, query, employeeID, periodID, timesheet.ApprovalStatusPending).Scan(&pending)
	if err != nil {
		return false, fmt.Errorf("failed to check pending timesheet approval: %w", err)
	}

	return pending, nil
}
