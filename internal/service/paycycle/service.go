package paycycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asifshaikgit/workforce-sub004/internal/domain/paycycle"
	"github.com/asifshaikgit/workforce-sub004/internal/domain/payrun"
	"github.com/asifshaikgit/workforce-sub004/internal/pkg/database"
	"github.com/asifshaikgit/workforce-sub004/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type CycleSettingServiceImpl struct {
	db          *database.DB
	settingRepo paycycle.CycleSettingRepository
	periodRepo  payrun.PeriodRepository
}

func NewCycleSettingService(
	db *database.DB,
	settingRepo paycycle.CycleSettingRepository,
	periodRepo payrun.PeriodRepository,
) paycycle.CycleSettingService {
	return &CycleSettingServiceImpl{
		db:          db,
		settingRepo: settingRepo,
		periodRepo:  periodRepo,
	}
}

func (s *CycleSettingServiceImpl) Create(ctx context.Context, req paycycle.CreateCycleSettingRequest) (paycycle.CycleSettingResponse, error) {
	if err := req.Validate(); err != nil {
		return paycycle.CycleSettingResponse{}, err
	}

	setting := req.ToSetting()
	if err := verifySettingDates(setting); err != nil {
		return paycycle.CycleSettingResponse{}, err
	}

	_, err := s.settingRepo.GetByName(ctx, setting.Name)
	if err == nil {
		return paycycle.CycleSettingResponse{}, paycycle.ErrSettingNameExists
	}
	if !errors.Is(err, paycycle.ErrSettingNotFound) {
		return paycycle.CycleSettingResponse{}, err
	}

	var created paycycle.CycleSetting
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.settingRepo.Create(txCtx, setting)
		if err != nil {
			return err
		}
		return s.seedPeriods(txCtx, created)
	})
	if err != nil {
		return paycycle.CycleSettingResponse{}, err
	}

	return paycycle.NewCycleSettingResponse(created), nil
}

func (s *CycleSettingServiceImpl) Update(ctx context.Context, req paycycle.UpdateCycleSettingRequest) (paycycle.CycleSettingResponse, error) {
	if err := req.Validate(); err != nil {
		return paycycle.CycleSettingResponse{}, err
	}

	current, err := s.settingRepo.GetByID(ctx, req.ID)
	if err != nil {
		return paycycle.CycleSettingResponse{}, err
	}

	setting := req.ToSetting()
	setting.ID = current.ID
	if err := verifySettingDates(setting); err != nil {
		return paycycle.CycleSettingResponse{}, err
	}

	// Once any period has been generated or resolved its dates are history;
	// rewriting the template under it would desync the chain.
	advanced, err := s.periodRepo.AnyAdvanced(ctx, current.ID)
	if err != nil {
		return paycycle.CycleSettingResponse{}, err
	}
	if advanced {
		return paycycle.CycleSettingResponse{}, paycycle.ErrSettingLocked
	}

	var updated paycycle.CycleSetting
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		updated, err = s.settingRepo.Update(txCtx, setting)
		if err != nil {
			return err
		}
		if err := s.periodRepo.DeleteUngenerated(txCtx, updated.ID); err != nil {
			return err
		}
		return s.seedPeriods(txCtx, updated)
	})
	if err != nil {
		return paycycle.CycleSettingResponse{}, err
	}

	return paycycle.NewCycleSettingResponse(updated), nil
}

func (s *CycleSettingServiceImpl) GetByID(ctx context.Context, id string) (paycycle.CycleSettingResponse, error) {
	setting, err := s.settingRepo.GetByID(ctx, id)
	if err != nil {
		return paycycle.CycleSettingResponse{}, err
	}
	return paycycle.NewCycleSettingResponse(setting), nil
}

func (s *CycleSettingServiceImpl) List(ctx context.Context) ([]paycycle.CycleSettingResponse, error) {
	settings, err := s.settingRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]paycycle.CycleSettingResponse, 0, len(settings))
	for _, setting := range settings {
		responses = append(responses, paycycle.NewCycleSettingResponse(setting))
	}
	return responses, nil
}

// seedPeriods creates the template's anchor period (both halves for
// semimonthly) as yet_to_generate instances; Generate later drafts them.
func (s *CycleSettingServiceImpl) seedPeriods(ctx context.Context, setting paycycle.CycleSetting) error {
	_, err := s.periodRepo.Create(ctx, payrun.PeriodInstance{
		SettingsID: setting.ID,
		FromDate:   setting.FromDate,
		ToDate:     setting.ToDate,
		CheckDate:  setting.CheckDate,
		Status:     payrun.StatusYetToGenerate,
	})
	if err != nil {
		return fmt.Errorf("failed to seed period instance: %w", err)
	}

	if setting.IsSemiMonthly() {
		_, err = s.periodRepo.Create(ctx, payrun.PeriodInstance{
			SettingsID: setting.ID,
			FromDate:   *setting.SecondFromDate,
			ToDate:     *setting.SecondToDate,
			CheckDate:  *setting.SecondCheckDate,
			Status:     payrun.StatusYetToGenerate,
		})
		if err != nil {
			return fmt.Errorf("failed to seed second half period instance: %w", err)
		}
	}

	return nil
}

// verifySettingDates cross-checks every caller-supplied date against the
// pure cycle rules. Mismatches are rejected, never corrected.
func verifySettingDates(setting paycycle.CycleSetting) error {
	if err := paycycle.VerifyPeriod(setting.CycleType, setting.FromDate, setting.ToDate); err != nil {
		return err
	}
	if err := verifyCheckPair(setting.CheckDate, setting.ActualCheckDate, setting.ToDate); err != nil {
		return err
	}

	if !setting.IsSemiMonthly() {
		if setting.SecondFromDate != nil || setting.SecondToDate != nil ||
			setting.SecondCheckDate != nil || setting.SecondActualCheckDate != nil {
			return paycycle.ErrSecondHalfForbidden
		}
		return nil
	}

	if setting.SecondFromDate == nil || setting.SecondToDate == nil ||
		setting.SecondCheckDate == nil || setting.SecondActualCheckDate == nil {
		return paycycle.ErrSecondHalfRequired
	}

	secondFrom, secondTo := paycycle.DeriveSecondHalf(setting.ToDate)
	if !secondFrom.Equal(paycycle.DateOnly(*setting.SecondFromDate)) ||
		!secondTo.Equal(paycycle.DateOnly(*setting.SecondToDate)) {
		return paycycle.ErrSecondHalfMismatch
	}

	return verifyCheckPair(*setting.SecondCheckDate, *setting.SecondActualCheckDate, *setting.SecondToDate)
}

func verifyCheckPair(checkDate, actualCheckDate, toDate time.Time) error {
	if paycycle.DateOnly(actualCheckDate).Before(paycycle.DateOnly(toDate)) {
		return paycycle.ErrCheckDateBeforeClose
	}
	if !paycycle.VerifyCheckDate(checkDate, actualCheckDate, toDate) {
		return paycycle.ErrCheckDateMismatch
	}
	return nil
}
