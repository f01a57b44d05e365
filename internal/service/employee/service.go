package employee

import (
	"context"
	"fmt"

	"github.com/asifshaikgit/workforce-sub004/internal/domain/audit"
	"github.com/asifshaikgit/workforce-sub004/internal/domain/employee"
	"github.com/asifshaikgit/workforce-sub004/internal/pkg/database"
	"github.com/asifshaikgit/workforce-sub004/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	trailRepo    audit.TrailRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	trailRepo audit.TrailRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		trailRepo:    trailRepo,
	}
}

func getUserIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// UpdateCompensation changes standard pay and worked hours. It shares the
// audit trail with the ledger: any field that actually changed is recorded
// in the same transaction as the update.
func (s *EmployeeServiceImpl) UpdateCompensation(ctx context.Context, req employee.UpdateCompensationRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updatedBy, err := getUserIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	var updated employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		emp, err := s.employeeRepo.GetByIDForUpdate(txCtx, req.ID)
		if err != nil {
			return err
		}

		before := audit.BalanceSnapshot{
			BalanceAmount:     emp.BalanceAmount,
			StandardPayAmount: emp.StandardPayAmount,
			HoursWorked:       emp.HoursWorked,
		}

		if req.StandardPayAmount != nil {
			emp.StandardPayAmount = *req.StandardPayAmount
		}
		if req.HoursWorked != nil {
			emp.HoursWorked = *req.HoursWorked
		}

		updated, err = s.employeeRepo.UpdateCompensation(txCtx, emp)
		if err != nil {
			return err
		}

		after := audit.BalanceSnapshot{
			BalanceAmount:     updated.BalanceAmount,
			StandardPayAmount: updated.StandardPayAmount,
			HoursWorked:       updated.HoursWorked,
		}

		summary := audit.BuildChangeSummary(before, after)
		if summary == "" {
			return nil
		}
		_, err = s.trailRepo.Append(txCtx, audit.BalanceAuditEntry{
			EmployeeID:  updated.ID,
			Information: summary,
			CreatedBy:   updatedBy,
		})
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.NewEmployeeResponse(updated), nil
}
