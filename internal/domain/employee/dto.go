package employee

import (
	"time"

	"github.com/asifshaikgit/workforce-sub004/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EmployeeResponse struct {
	ID                string          `json:"id"`
	EmployeeCode      string          `json:"employee_code"`
	FullName          string          `json:"full_name"`
	EmploymentStatus  string          `json:"employment_status"`
	BalanceAmount     decimal.Decimal `json:"balance_amount"`
	StandardPayAmount decimal.Decimal `json:"standard_pay_amount"`
	HoursWorked       decimal.Decimal `json:"hours_worked"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                e.ID,
		EmployeeCode:      e.EmployeeCode,
		FullName:          e.FullName,
		EmploymentStatus:  string(e.EmploymentStatus),
		BalanceAmount:     e.BalanceAmount,
		StandardPayAmount: e.StandardPayAmount,
		HoursWorked:       e.HoursWorked,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

type UpdateCompensationRequest struct {
	ID                string           `json:"-"`
	StandardPayAmount *decimal.Decimal `json:"standard_pay_amount,omitempty"`
	HoursWorked       *decimal.Decimal `json:"hours_worked,omitempty"`
}

func (r *UpdateCompensationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StandardPayAmount != nil && r.StandardPayAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "standard_pay_amount", Message: "must be non-negative"})
	}
	if r.HoursWorked != nil && r.HoursWorked.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
