package postgresql

import (
	"context"
	"fmt"

	"github.com/asifshaikgit/workforce-sub004/internal/domain/audit"
	"github.com/asifshaikgit/workforce-sub004/internal/pkg/database"
	"github.com/google/uuid"
)

// The audit table is append-only: this repository exposes no update or
// delete, and none exists elsewhere.
type trailRepository struct {
	db *database.DB
}

func NewTrailRepository(db *database.DB) audit.TrailRepository {
	return &trailRepository{db: db}
}

func (r *trailRepository) Append(ctx context.Context, entry audit.BalanceAuditEntry) (audit.BalanceAuditEntry, error) {
	q := GetQuerier(ctx, r.db)

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	query := `
		INSERT INTO balance_audit_entries (id, employee_id, information, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, information, created_by, created_at
	`

	var e audit.BalanceAuditEntry
	err := q.QueryRow(ctx, query, entry.ID, entry.EmployeeID, entry.Information, entry.CreatedBy).Scan(
		&e.ID, &e.EmployeeID, &e.Information, &e.CreatedBy, &e.CreatedAt,
	)
	if err != nil {
		return audit.BalanceAuditEntry{}, fmt.Errorf("failed to append audit entry: %w", err)
	}

	return e, nil
}

func (r *trailRepository) ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]audit.BalanceAuditEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM balance_audit_entries WHERE employee_id = $1`, employeeID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	query := `
		SELECT id, employee_id, information, created_by, created_at
		FROM balance_audit_entries
		WHERE employee_id = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, employeeID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []audit.BalanceAuditEntry
	for rows.Next() {
		var e audit.BalanceAuditEntry
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Information, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, total, rows.Err()
}
