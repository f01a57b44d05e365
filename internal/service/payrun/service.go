package payrun

import (
	"context"
	"errors"
	"fmt"

	"github.com/asifshaikgit/workforce-sub004/internal/domain/ledger"
	"github.com/asifshaikgit/workforce-sub004/internal/domain/paycycle"
	"github.com/asifshaikgit/workforce-sub004/internal/domain/payrun"
	"github.com/asifshaikgit/workforce-sub004/internal/pkg/database"
	"github.com/asifshaikgit/workforce-sub004/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type PayRunServiceImpl struct {
	db          *database.DB
	settingRepo paycycle.CycleSettingRepository
	periodRepo  payrun.PeriodRepository
	paymentRepo ledger.PaymentRepository
}

func NewPayRunService(
	db *database.DB,
	settingRepo paycycle.CycleSettingRepository,
	periodRepo payrun.PeriodRepository,
	paymentRepo ledger.PaymentRepository,
) payrun.PayRunService {
	return &PayRunServiceImpl{
		db:          db,
		settingRepo: settingRepo,
		periodRepo:  periodRepo,
		paymentRepo: paymentRepo,
	}
}

// Generate drafts the next period for a setting. The seeded head is
// advanced first; once all seeds are generated, a new contiguous period is
// derived from the last one. The last instance stays locked for the whole
// transaction so two concurrent calls cannot both append the same period.
func (s *PayRunServiceImpl) Generate(ctx context.Context, settingsID string) (payrun.PeriodInstanceResponse, error) {
	setting, err := s.settingRepo.GetByID(ctx, settingsID)
	if err != nil {
		return payrun.PeriodInstanceResponse{}, err
	}

	var instance payrun.PeriodInstance
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Advance the earliest seed if one is still waiting.
		head, err := s.periodRepo.FirstUngenerated(txCtx, setting.ID)
		if err == nil {
			if err := s.periodRepo.UpdateStatus(txCtx, head.ID, payrun.StatusDrafted); err != nil {
				return err
			}
			head.Status = payrun.StatusDrafted
			instance = head
			return nil
		}
		if !errors.Is(err, payrun.ErrInstanceNotFound) {
			return err
		}

		last, err := s.periodRepo.LastBySettings(txCtx, setting.ID)
		if err != nil {
			return fmt.Errorf("setting has no seeded periods: %w", err)
		}

		fromDate := paycycle.DateOnly(last.ToDate).AddDate(0, 0, 1)
		derived, err := paycycle.DerivePeriod(setting.CycleType, fromDate)
		if err != nil {
			return err
		}

		created, err := s.periodRepo.Create(txCtx, payrun.PeriodInstance{
			SettingsID: setting.ID,
			FromDate:   fromDate,
			ToDate:     derived.ToDate,
			CheckDate:  derived.CheckDate,
			Status:     payrun.StatusDrafted,
		})
		if err != nil {
			// Idempotent per (settings, from date): a concurrent generation
			// already created this period, hand back the existing row.
			if errors.Is(err, payrun.ErrDuplicatePeriod) {
				created, err = s.periodRepo.GetBySettingsAndFromDate(txCtx, setting.ID, fromDate)
				if err != nil {
					return err
				}
			} else {
				return err
			}
		}
		instance = created
		return nil
	})
	if err != nil {
		return payrun.PeriodInstanceResponse{}, err
	}

	return payrun.NewPeriodInstanceResponse(instance), nil
}

func (s *PayRunServiceImpl) Submit(ctx context.Context, instanceID string) (payrun.PeriodInstanceResponse, error) {
	return s.resolve(ctx, instanceID, payrun.StatusSubmitted)
}

func (s *PayRunServiceImpl) Skip(ctx context.Context, instanceID string) (payrun.PeriodInstanceResponse, error) {
	return s.resolve(ctx, instanceID, payrun.StatusSkipped)
}

// resolve applies the terminal transition. The guards run on locked rows
// inside one transaction: the target is locked first, then every earlier
// sibling, so a concurrent out-of-order submit blocks and then fails
// instead of racing past the check.
func (s *PayRunServiceImpl) resolve(ctx context.Context, instanceID string, target payrun.PeriodStatus) (payrun.PeriodInstanceResponse, error) {
	var instance payrun.PeriodInstance
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		p, err := s.periodRepo.GetByIDForUpdate(txCtx, instanceID)
		if err != nil {
			return err
		}
		if !p.Status.CanResolve() {
			return payrun.ErrAlreadyResolved
		}

		unresolved, err := s.periodRepo.EarlierUnresolvedForUpdate(txCtx, p.SettingsID, p.FromDate)
		if err != nil {
			return err
		}
		if unresolved > 0 {
			return payrun.ErrOrderViolation
		}

		if target == payrun.StatusSubmitted {
			open, err := s.paymentRepo.CountUnfinalizedWithAmount(txCtx, p.ID)
			if err != nil {
				return err
			}
			if open > 0 {
				return payrun.ErrFinalizePending
			}
		}

		if err := s.periodRepo.UpdateStatus(txCtx, p.ID, target); err != nil {
			return err
		}
		p.Status = target
		instance = p
		return nil
	})
	if err != nil {
		return payrun.PeriodInstanceResponse{}, err
	}

	return payrun.NewPeriodInstanceResponse(instance), nil
}

func (s *PayRunServiceImpl) GetByID(ctx context.Context, instanceID string) (payrun.PeriodInstanceResponse, error) {
	instance, err := s.periodRepo.GetByID(ctx, instanceID)
	if err != nil {
		return payrun.PeriodInstanceResponse{}, err
	}
	return payrun.NewPeriodInstanceResponse(instance), nil
}

func (s *PayRunServiceImpl) ListBySettings(ctx context.Context, settingsID string) ([]payrun.PeriodInstanceResponse, error) {
	if _, err := s.settingRepo.GetByID(ctx, settingsID); err != nil {
		return nil, err
	}

	instances, err := s.periodRepo.ListBySettings(ctx, settingsID)
	if err != nil {
		return nil, err
	}

	responses := make([]payrun.PeriodInstanceResponse, 0, len(instances))
	for _, instance := range instances {
		responses = append(responses, payrun.NewPeriodInstanceResponse(instance))
	}
	return responses, nil
}
