package ledger

import (
	"time"

	"github.com/asifshaikgit/workforce-sub004/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RecordPaymentRequest struct {
	PeriodID   string          `json:"-"`
	EmployeeID string          `json:"employee_id"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	IsDraft    bool            `json:"is_draft"`
	IsFinalize bool            `json:"is_finalize"`
	Comments   *string         `json:"comments,omitempty"`
}

func (r *RecordPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.AmountPaid.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount_paid", Message: "must be non-negative"})
	}
	if r.Comments != nil && len(*r.Comments) > MaxCommentsLength {
		errs = append(errs, validator.ValidationError{Field: "comments", Message: "must be at most 100 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PaymentDetailResponse struct {
	ID              string          `json:"id"`
	PeriodID        string          `json:"period_id"`
	EmployeeID      string          `json:"employee_id"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	IsDraft         bool            `json:"is_draft"`
	IsFinalize      bool            `json:"is_finalize"`
	ExistingBalance decimal.Decimal `json:"existing_balance"`
	Comments        *string         `json:"comments,omitempty"`
	CreatedBy       string          `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func NewPaymentDetailResponse(d PaymentDetail) PaymentDetailResponse {
	return PaymentDetailResponse{
		ID:              d.ID,
		PeriodID:        d.PeriodID,
		EmployeeID:      d.EmployeeID,
		AmountPaid:      d.AmountPaid,
		IsDraft:         d.IsDraft,
		IsFinalize:      d.IsFinalize,
		ExistingBalance: d.ExistingBalance,
		Comments:        d.Comments,
		CreatedBy:       d.CreatedBy,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}
