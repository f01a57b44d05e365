package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxCommentsLength caps the free-text comment on a payment row.
const MaxCommentsLength = 100

// PaymentDetail - One payment row per employee per period. Rows stay open
// for adjustment while IsDraft; once IsFinalize is set the row is settled
// and immutable.
type PaymentDetail struct {
	ID              string
	PeriodID        string
	EmployeeID      string
	AmountPaid      decimal.Decimal
	IsDraft         bool
	IsFinalize      bool
	ExistingBalance decimal.Decimal
	Comments        *string
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
