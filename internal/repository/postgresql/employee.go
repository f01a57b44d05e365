package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/asifshaikgit/workforce-sub004/internal/domain/employee"
	"github.com/asifshaikgit/workforce-sub004/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, employee_code, full_name, employment_status,
	balance_amount, standard_pay_amount, hours_worked, created_at, updated_at`

func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	query := `
		INSERT INTO employees (id, employee_code, full_name, employment_status,
			balance_amount, standard_pay_amount, hours_worked)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + employeeColumns

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		e.ID, e.EmployeeCode, e.FullName, e.EmploymentStatus,
		e.BalanceAmount, e.StandardPayAmount, e.HoursWorked,
	).Scan(
		&created.ID, &created.EmployeeCode, &created.FullName, &created.EmploymentStatus,
		&created.BalanceAmount, &created.StandardPayAmount, &created.HoursWorked,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_employee_code") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return r.getByID(ctx, id, false)
}

func (r *employeeRepository) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	return r.getByID(ctx, id, true)
}

func (r *employeeRepository) getByID(ctx context.Context, id string, forUpdate bool) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.EmployeeCode, &e.FullName, &e.EmploymentStatus,
		&e.BalanceAmount, &e.StandardPayAmount, &e.HoursWorked,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) UpdateCompensation(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			balance_amount = $2,
			standard_pay_amount = $3,
			hours_worked = $4,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + employeeColumns

	var updated employee.Employee
	err := q.QueryRow(ctx, query, e.ID, e.BalanceAmount, e.StandardPayAmount, e.HoursWorked).Scan(
		&updated.ID, &updated.EmployeeCode, &updated.FullName, &updated.EmploymentStatus,
		&updated.BalanceAmount, &updated.StandardPayAmount, &updated.HoursWorked,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee compensation: %w", err)
	}

	return updated, nil
}
