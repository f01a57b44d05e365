package postgresql

import (
	"context"
	"fmt"

	"github.com/asifshaikgit/workforce-sub004/internal/domain/ledger"
	"github.com/asifshaikgit/workforce-sub004/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type paymentRepository struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) ledger.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, period_id, employee_id, amount_paid, is_draft, is_finalize,
	existing_balance, comments, created_by, created_at, updated_at`

func (r *paymentRepository) GetForUpdate(ctx context.Context, periodID, employeeID string) (ledger.PaymentDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + paymentColumns + `
		FROM payment_details
		WHERE period_id = $1 AND employee_id = $2
		FOR UPDATE
	`

	var d ledger.PaymentDetail
	err := q.QueryRow(ctx, query, periodID, employeeID).Scan(
		&d.ID, &d.PeriodID, &d.EmployeeID, &d.AmountPaid, &d.IsDraft, &d.IsFinalize,
		&d.ExistingBalance, &d.Comments, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ledger.PaymentDetail{}, ledger.ErrPaymentNotFound
		}
		return ledger.PaymentDetail{}, fmt.Errorf("failed to get payment detail: %w", err)
	}

	return d, nil
}

func (r *paymentRepository) Upsert(ctx context.Context, detail ledger.PaymentDetail) (ledger.PaymentDetail, error) {
	q := GetQuerier(ctx, r.db)

	if detail.ID == "" {
		detail.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payment_details (
			id, period_id, employee_id, amount_paid, is_draft, is_finalize,
			existing_balance, comments, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (period_id, employee_id) DO UPDATE SET
			amount_paid = EXCLUDED.amount_paid,
			is_draft = EXCLUDED.is_draft,
			is_finalize = EXCLUDED.is_finalize,
			existing_balance = EXCLUDED.existing_balance,
			comments = EXCLUDED.comments,
			updated_at = NOW()
		RETURNING ` + paymentColumns

	var d ledger.PaymentDetail
	err := q.QueryRow(ctx, query,
		detail.ID, detail.PeriodID, detail.EmployeeID, detail.AmountPaid, detail.IsDraft, detail.IsFinalize,
		detail.ExistingBalance, detail.Comments, detail.CreatedBy,
	).Scan(
		&d.ID, &d.PeriodID, &d.EmployeeID, &d.AmountPaid, &d.IsDraft, &d.IsFinalize,
		&d.ExistingBalance, &d.Comments, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return ledger.PaymentDetail{}, fmt.Errorf("failed to upsert payment detail: %w", err)
	}

	return d, nil
}

func (r *paymentRepository) ListByPeriod(ctx context.Context, periodID string) ([]ledger.PaymentDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paymentColumns + ` FROM payment_details WHERE period_id = $1 ORDER BY created_at`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment details: %w", err)
	}
	defer rows.Close()

	var details []ledger.PaymentDetail
	for rows.Next() {
		var d ledger.PaymentDetail
		err := rows.Scan(
			&d.ID, &d.PeriodID, &d.EmployeeID, &d.AmountPaid, &d.IsDraft, &d.IsFinalize,
			&d.ExistingBalance, &d.Comments, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment detail: %w", err)
		}
		details = append(details, d)
	}

	return details, rows.Err()
}

func (r *paymentRepository) CountUnfinalizedWithAmount(ctx context.Context, periodID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM payment_details
		WHERE period_id = $1 AND amount_paid > 0 AND is_finalize = FALSE
	`

	var count int
	err := q.QueryRow(ctx, query, periodID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unfinalized payments: %w", err)
	}

	return count, nil
}
