package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/asifshaikgit/workforce-sub004/internal/domain/audit"
	"github.com/asifshaikgit/workforce-sub004/internal/domain/employee"
	"github.com/asifshaikgit/workforce-sub004/internal/domain/ledger"
	"github.com/asifshaikgit/workforce-sub004/internal/domain/payrun"
	"github.com/asifshaikgit/workforce-sub004/internal/domain/timesheet"
	"github.com/asifshaikgit/workforce-sub004/internal/pkg/database"
	"github.com/asifshaikgit/workforce-sub004/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type LedgerServiceImpl struct {
	db           *database.DB
	paymentRepo  ledger.PaymentRepository
	periodRepo   payrun.PeriodRepository
	employeeRepo employee.EmployeeRepository
	approvalRepo timesheet.ApprovalRepository
	trailRepo    audit.TrailRepository
}

func NewLedgerService(
	db *database.DB,
	paymentRepo ledger.PaymentRepository,
	periodRepo payrun.PeriodRepository,
	employeeRepo employee.EmployeeRepository,
	approvalRepo timesheet.ApprovalRepository,
	trailRepo audit.TrailRepository,
) ledger.LedgerService {
	return &LedgerServiceImpl{
		db:           db,
		paymentRepo:  paymentRepo,
		periodRepo:   periodRepo,
		employeeRepo: employeeRepo,
		approvalRepo: approvalRepo,
		trailRepo:    trailRepo,
	}
}

// Helper to get user_id from JWT context
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

// RecordPayment upserts the payment row for one employee in one period.
// Every guard is evaluated on locked rows before any write; the balance
// delta and the audit entry commit atomically with the row or not at all.
func (s *LedgerServiceImpl) RecordPayment(ctx context.Context, req ledger.RecordPaymentRequest) (ledger.PaymentDetailResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.PaymentDetailResponse{}, err
	}

	createdBy, err := getUserIDFromContext(ctx)
	if err != nil {
		return ledger.PaymentDetailResponse{}, err
	}

	var detail ledger.PaymentDetail
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		period, err := s.periodRepo.GetByIDForUpdate(txCtx, req.PeriodID)
		if err != nil {
			return err
		}
		if period.Status.IsResolved() {
			return ledger.ErrPeriodResolved
		}

		existing, err := s.paymentRepo.GetForUpdate(txCtx, req.PeriodID, req.EmployeeID)
		if err != nil && !errors.Is(err, ledger.ErrPaymentNotFound) {
			return err
		}
		hasExisting := err == nil
		if hasExisting && existing.IsFinalize {
			return ledger.ErrAlreadyFinalized
		}

		pending, err := s.approvalRepo.HasPendingApproval(txCtx, req.EmployeeID, req.PeriodID)
		if err != nil {
			return err
		}
		switch {
		case pending && req.IsFinalize:
			return ledger.ErrFinalizeNotAllowed
		case pending && !req.AmountPaid.IsZero():
			return ledger.ErrNonZeroAmountBlocked
		case !pending && !req.IsDraft && !req.IsFinalize && req.AmountPaid.IsPositive():
			return ledger.ErrFinalizeRequiredForPayment
		}

		emp, err := s.employeeRepo.GetByIDForUpdate(txCtx, req.EmployeeID)
		if err != nil {
			return err
		}

		next := ledger.PaymentDetail{
			PeriodID:        req.PeriodID,
			EmployeeID:      req.EmployeeID,
			AmountPaid:      req.AmountPaid,
			IsDraft:         req.IsDraft,
			IsFinalize:      req.IsFinalize,
			ExistingBalance: emp.BalanceAmount,
			Comments:        req.Comments,
			CreatedBy:       createdBy,
		}
		if hasExisting {
			next.ID = existing.ID
		}

		detail, err = s.paymentRepo.Upsert(txCtx, next)
		if err != nil {
			return err
		}

		// The delta is against the previous row amount so re-drafting a
		// payment adjusts the balance instead of double-charging it.
		delta := req.AmountPaid
		if hasExisting {
			delta = delta.Sub(existing.AmountPaid)
		}
		if delta.IsZero() {
			return nil
		}

		before := audit.BalanceSnapshot{
			BalanceAmount:     emp.BalanceAmount,
			StandardPayAmount: emp.StandardPayAmount,
			HoursWorked:       emp.HoursWorked,
		}
		emp.BalanceAmount = emp.BalanceAmount.Sub(delta)
		updated, err := s.employeeRepo.UpdateCompensation(txCtx, emp)
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
			EmployeeID:  emp.ID,
			Information: summary,
			CreatedBy:   createdBy,
		})
		return err
	})
	if err != nil {
		return ledger.PaymentDetailResponse{}, err
	}

	return ledger.NewPaymentDetailResponse(detail), nil
}

func (s *LedgerServiceImpl) ListByPeriod(ctx context.Context, periodID string) ([]ledger.PaymentDetailResponse, error) {
	if _, err := s.periodRepo.GetByID(ctx, periodID); err != nil {
		return nil, err
	}

	details, err := s.paymentRepo.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	responses := make([]ledger.PaymentDetailResponse, 0, len(details))
	for _, detail := range details {
		responses = append(responses, ledger.NewPaymentDetailResponse(detail))
	}
	return responses, nil
}
