package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/asifshaikgit/workforce-sub004/internal/domain/payrun"
	"github.com/asifshaikgit/workforce-sub004/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type periodRepository struct {
	db *database.DB
}

func NewPeriodRepository(db *database.DB) payrun.PeriodRepository {
	return &periodRepository{db: db}
}

const periodColumns = `id, settings_id, from_date, to_date, check_date, status, created_at, updated_at`

func (r *periodRepository) Create(ctx context.Context, instance payrun.PeriodInstance) (payrun.PeriodInstance, error) {
	q := GetQuerier(ctx, r.db)

	if instance.ID == "" {
		instance.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payroll_period_instances (id, settings_id, from_date, to_date, check_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + periodColumns

	var p payrun.PeriodInstance
	err := q.QueryRow(ctx, query,
		instance.ID, instance.SettingsID, instance.FromDate, instance.ToDate, instance.CheckDate, instance.Status,
	).Scan(&p.ID, &p.SettingsID, &p.FromDate, &p.ToDate, &p.CheckDate, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_period_settings_from_date") {
			return payrun.PeriodInstance{}, payrun.ErrDuplicatePeriod
		}
		return payrun.PeriodInstance{}, fmt.Errorf("failed to create period instance: %w", err)
	}

	return p, nil
}

func (r *periodRepository) GetByID(ctx context.Context, id string) (payrun.PeriodInstance, error) {
	return r.getByID(ctx, id, false)
}

func (r *periodRepository) GetByIDForUpdate(ctx context.Context, id string) (payrun.PeriodInstance, error) {
	return r.getByID(ctx, id, true)
}

func (r *periodRepository) getByID(ctx context.Context, id string, forUpdate bool) (payrun.PeriodInstance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_period_instances WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var p payrun.PeriodInstance
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.SettingsID, &p.FromDate, &p.ToDate, &p.CheckDate, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrun.PeriodInstance{}, payrun.ErrInstanceNotFound
		}
		return payrun.PeriodInstance{}, fmt.Errorf("failed to get period instance: %w", err)
	}

	return p, nil
}

func (r *periodRepository) GetBySettingsAndFromDate(ctx context.Context, settingsID string, fromDate time.Time) (payrun.PeriodInstance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_period_instances WHERE settings_id = $1 AND from_date = $2`

	var p payrun.PeriodInstance
	err := q.QueryRow(ctx, query, settingsID, fromDate).Scan(
		&p.ID, &p.SettingsID, &p.FromDate, &p.ToDate, &p.CheckDate, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrun.PeriodInstance{}, payrun.ErrInstanceNotFound
		}
		return payrun.PeriodInstance{}, fmt.Errorf("failed to get period instance by from date: %w", err)
	}

	return p, nil
}

func (r *periodRepository) LastBySettings(ctx context.Context, settingsID string) (payrun.PeriodInstance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + periodColumns + `
		FROM payroll_period_instances
		WHERE settings_id = $1
		ORDER BY from_date DESC
		LIMIT 1
		FOR UPDATE
	`

	var p payrun.PeriodInstance
	err := q.QueryRow(ctx, query, settingsID).Scan(
		&p.ID, &p.SettingsID, &p.FromDate, &p.ToDate, &p.CheckDate, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrun.PeriodInstance{}, payrun.ErrInstanceNotFound
		}
		return payrun.PeriodInstance{}, fmt.Errorf("failed to get last period instance: %w", err)
	}

	return p, nil
}

func (r *periodRepository) FirstUngenerated(ctx context.Context, settingsID string) (payrun.PeriodInstance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + periodColumns + `
		FROM payroll_period_instances
		WHERE settings_id = $1 AND status = $2
		ORDER BY from_date
		LIMIT 1
		FOR UPDATE
	`

	var p payrun.PeriodInstance
	err := q.QueryRow(ctx, query, settingsID, payrun.StatusYetToGenerate).Scan(
		&p.ID, &p.SettingsID, &p.FromDate, &p.ToDate, &p.CheckDate, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrun.PeriodInstance{}, payrun.ErrInstanceNotFound
		}
		return payrun.PeriodInstance{}, fmt.Errorf("failed to get ungenerated period instance: %w", err)
	}

	return p, nil
}

func (r *periodRepository) ListBySettings(ctx context.Context, settingsID string) ([]payrun.PeriodInstance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_period_instances WHERE settings_id = $1 ORDER BY from_date`

	rows, err := q.Query(ctx, query, settingsID)
	if err != nil {
		return nil, fmt.Errorf("failed to list period instances: %w", err)
	}
	defer rows.Close()

	var instances []payrun.PeriodInstance
	for rows.Next() {
		var p payrun.PeriodInstance
		err := rows.Scan(&p.ID, &p.SettingsID, &p.FromDate, &p.ToDate, &p.CheckDate, &p.Status, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan period instance: %w", err)
		}
		instances = append(instances, p)
	}

	return instances, rows.Err()
}

// EarlierUnresolvedForUpdate locks the predecessor rows and counts the
// unresolved ones. The lock keeps a concurrent resolution of an earlier
// period from racing past this check within its own transaction.
func (r *periodRepository) EarlierUnresolvedForUpdate(ctx context.Context, settingsID string, fromDate time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status
		FROM payroll_period_instances
		WHERE settings_id = $1 AND from_date < $2
		ORDER BY from_date
		FOR UPDATE
	`

	rows, err := q.Query(ctx, query, settingsID, fromDate)
	if err != nil {
		return 0, fmt.Errorf("failed to lock earlier period instances: %w", err)
	}
	defer rows.Close()

	unresolved := 0
	for rows.Next() {
		var status payrun.PeriodStatus
		if err := rows.Scan(&status); err != nil {
			return 0, fmt.Errorf("failed to scan period status: %w", err)
		}
		if !status.IsResolved() {
			unresolved++
		}
	}

	return unresolved, rows.Err()
}

func (r *periodRepository) UpdateStatus(ctx context.Context, id string, status payrun.PeriodStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE payroll_period_instances SET status = $2, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update period status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payrun.ErrInstanceNotFound
	}

	return nil
}

func (r *periodRepository) AnyAdvanced(ctx context.Context, settingsID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM payroll_period_instances
			WHERE settings_id = $1 AND status <> $2
		)
	`

	var advanced bool
	err := q.QueryRow(ctx, query, settingsID, payrun.StatusYetToGenerate).Scan(&advanced)
	if err != nil {
		return false, fmt.Errorf("failed to check advanced periods: %w", err)
	}

	return advanced, nil
}

func (r *periodRepository) DeleteUngenerated(ctx context.Context, settingsID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payroll_period_instances WHERE settings_id = $1 AND status = $2`

	_, err := q.Exec(ctx, query, settingsID, payrun.StatusYetToGenerate)
	if err != nil {
		return fmt.Errorf("failed to delete ungenerated period instances: %w", err)
	}

	return nil
}
