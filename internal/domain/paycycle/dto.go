package paycycle

import (
	"time"

	"github.com/asifshaikgit/workforce-sub004/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

// ========== REQUESTS ==========

type CreateCycleSettingRequest struct {
	Name            string `json:"name"`
	CycleType       string `json:"cycle_type"`
	FromDate        string `json:"from_date"`
	ToDate          string `json:"to_date"`
	CheckDate       string `json:"check_date"`
	ActualCheckDate string `json:"actual_check_date"`

	SecondFromDate        *string `json:"second_from_date,omitempty"`
	SecondToDate          *string `json:"second_to_date,omitempty"`
	SecondCheckDate       *string `json:"second_check_date,omitempty"`
	SecondActualCheckDate *string `json:"second_actual_check_date,omitempty"`
}

func (r *CreateCycleSettingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !CycleType(r.CycleType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "cycle_type", Message: "must be one of weekly, biweekly, monthly, semimonthly"})
	}

	dates := map[string]string{
		"from_date":         r.FromDate,
		"to_date":           r.ToDate,
		"check_date":        r.CheckDate,
		"actual_check_date": r.ActualCheckDate,
	}
	for field, value := range dates {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "is required"})
			continue
		}
		if _, ok := validator.IsValidDate(value); !ok {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be a date in YYYY-MM-DD format"})
		}
	}

	secondDates := map[string]*string{
		"second_from_date":         r.SecondFromDate,
		"second_to_date":           r.SecondToDate,
		"second_check_date":        r.SecondCheckDate,
		"second_actual_check_date": r.SecondActualCheckDate,
	}
	for field, value := range secondDates {
		if value == nil {
			continue
		}
		if _, ok := validator.IsValidDate(*value); !ok {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be a date in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToSetting builds the entity from an already validated request.
func (r *CreateCycleSettingRequest) ToSetting() CycleSetting {
	setting := CycleSetting{
		Name:            r.Name,
		CycleType:       CycleType(r.CycleType),
		FromDate:        mustParseDate(r.FromDate),
		ToDate:          mustParseDate(r.ToDate),
		CheckDate:       mustParseDate(r.CheckDate),
		ActualCheckDate: mustParseDate(r.ActualCheckDate),
	}
	setting.SecondFromDate = parseDatePtr(r.SecondFromDate)
	setting.SecondToDate = parseDatePtr(r.SecondToDate)
	setting.SecondCheckDate = parseDatePtr(r.SecondCheckDate)
	setting.SecondActualCheckDate = parseDatePtr(r.SecondActualCheckDate)
	return setting
}

type UpdateCycleSettingRequest struct {
	ID string `json:"-"`
	CreateCycleSettingRequest
}

// ========== RESPONSES ==========

type CycleSettingResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	CycleType       string `json:"cycle_type"`
	FromDate        string `json:"from_date"`
	ToDate          string `json:"to_date"`
	CheckDate       string `json:"check_date"`
	ActualCheckDate string `json:"actual_check_date"`

	SecondFromDate        *string `json:"second_from_date,omitempty"`
	SecondToDate          *string `json:"second_to_date,omitempty"`
	SecondCheckDate       *string `json:"second_check_date,omitempty"`
	SecondActualCheckDate *string `json:"second_actual_check_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewCycleSettingResponse(s CycleSetting) CycleSettingResponse {
	return CycleSettingResponse{
		ID:                    s.ID,
		Name:                  s.Name,
		CycleType:             string(s.CycleType),
		FromDate:              s.FromDate.Format(dateLayout),
		ToDate:                s.ToDate.Format(dateLayout),
		CheckDate:             s.CheckDate.Format(dateLayout),
		ActualCheckDate:       s.ActualCheckDate.Format(dateLayout),
		SecondFromDate:        formatDatePtr(s.SecondFromDate),
		SecondToDate:          formatDatePtr(s.SecondToDate),
		SecondCheckDate:       formatDatePtr(s.SecondCheckDate),
		SecondActualCheckDate: formatDatePtr(s.SecondActualCheckDate),
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

func mustParseDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := mustParseDate(*s)
	return &t
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
