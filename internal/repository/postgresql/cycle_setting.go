package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/asifshaikgit/workforce-sub004/internal/domain/paycycle"
	"github.com/asifshaikgit/workforce-sub004/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type cycleSettingRepository struct {
	db *database.DB
}

func NewCycleSettingRepository(db *database.DB) paycycle.CycleSettingRepository {
	return &cycleSettingRepository{db: db}
}

const cycleSettingColumns = `id, name, cycle_type, from_date, to_date, check_date, actual_check_date,
	second_from_date, second_to_date, second_check_date, second_actual_check_date,
	created_at, updated_at`

func (r *cycleSettingRepository) Create(ctx context.Context, setting paycycle.CycleSetting) (paycycle.CycleSetting, error) {
	q := GetQuerier(ctx, r.db)

	if setting.ID == "" {
		setting.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payroll_cycle_settings (
			id, name, cycle_type, from_date, to_date, check_date, actual_check_date,
			second_from_date, second_to_date, second_check_date, second_actual_check_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + cycleSettingColumns

	var s paycycle.CycleSetting
	err := q.QueryRow(ctx, query,
		setting.ID, setting.Name, setting.CycleType,
		setting.FromDate, setting.ToDate, setting.CheckDate, setting.ActualCheckDate,
		setting.SecondFromDate, setting.SecondToDate, setting.SecondCheckDate, setting.SecondActualCheckDate,
	).Scan(
		&s.ID, &s.Name, &s.CycleType, &s.FromDate, &s.ToDate, &s.CheckDate, &s.ActualCheckDate,
		&s.SecondFromDate, &s.SecondToDate, &s.SecondCheckDate, &s.SecondActualCheckDate,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_cycle_setting_name") {
			return paycycle.CycleSetting{}, paycycle.ErrSettingNameExists
		}
		return paycycle.CycleSetting{}, fmt.Errorf("failed to create pay cycle setting: %w", err)
	}

	return s, nil
}

func (r *cycleSettingRepository) GetByID(ctx context.Context, id string) (paycycle.CycleSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + cycleSettingColumns + ` FROM payroll_cycle_settings WHERE id = $1`

	var s paycycle.CycleSetting
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.CycleType, &s.FromDate, &s.ToDate, &s.CheckDate, &s.ActualCheckDate,
		&s.SecondFromDate, &s.SecondToDate, &s.SecondCheckDate, &s.SecondActualCheckDate,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return paycycle.CycleSetting{}, paycycle.ErrSettingNotFound
		}
		return paycycle.CycleSetting{}, fmt.Errorf("failed to get pay cycle setting: %w", err)
	}

	return s, nil
}

func (r *cycleSettingRepository) GetByName(ctx context.Context, name string) (paycycle.CycleSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + cycleSettingColumns + ` FROM payroll_cycle_settings WHERE name = $1`

	var s paycycle.CycleSetting
	err := q.QueryRow(ctx, query, name).Scan(
		&s.ID, &s.Name, &s.CycleType, &s.FromDate, &s.ToDate, &s.CheckDate, &s.ActualCheckDate,
		&s.SecondFromDate, &s.SecondToDate, &s.SecondCheckDate, &s.SecondActualCheckDate,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return paycycle.CycleSetting{}, paycycle.ErrSettingNotFound
		}
		return paycycle.CycleSetting{}, fmt.Errorf("failed to get pay cycle setting by name: %w", err)
	}

	return s, nil
}

func (r *cycleSettingRepository) List(ctx context.Context) ([]paycycle.CycleSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + cycleSettingColumns + ` FROM payroll_cycle_settings ORDER BY created_at`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay cycle settings: %w", err)
	}
	defer rows.Close()

	var settings []paycycle.CycleSetting
	for rows.Next() {
		var s paycycle.CycleSetting
		err := rows.Scan(
			&s.ID, &s.Name, &s.CycleType, &s.FromDate, &s.ToDate, &s.CheckDate, &s.ActualCheckDate,
			&s.SecondFromDate, &s.SecondToDate, &s.SecondCheckDate, &s.SecondActualCheckDate,
			&s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pay cycle setting: %w", err)
		}
		settings = append(settings, s)
	}

	return settings, rows.Err()
}

func (r *cycleSettingRepository) Update(ctx context.Context, setting paycycle.CycleSetting) (paycycle.CycleSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_cycle_settings SET
			name = $2, cycle_type = $3, from_date = $4, to_date = $5,
			check_date = $6, actual_check_date = $7,
			second_from_date = $8, second_to_date = $9,
			second_check_date = $10, second_actual_check_date = $11,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + cycleSettingColumns

	var s paycycle.CycleSetting
	err := q.QueryRow(ctx, query,
		setting.ID, setting.Name, setting.CycleType,
		setting.FromDate, setting.ToDate, setting.CheckDate, setting.ActualCheckDate,
		setting.SecondFromDate, setting.SecondToDate, setting.SecondCheckDate, setting.SecondActualCheckDate,
	).Scan(
		&s.ID, &s.Name, &s.CycleType, &s.FromDate, &s.ToDate, &s.CheckDate, &s.ActualCheckDate,
		&s.SecondFromDate, &s.SecondToDate, &s.SecondCheckDate, &s.SecondActualCheckDate,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return paycycle.CycleSetting{}, paycycle.ErrSettingNotFound
		}
		if strings.Contains(err.Error(), "uk_payroll_cycle_setting_name") {
			return paycycle.CycleSetting{}, paycycle.ErrSettingNameExists
		}
		return paycycle.CycleSetting{}, fmt.Errorf("failed to update pay cycle setting: %w", err)
	}

	return s, nil
}
