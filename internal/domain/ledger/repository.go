package ledger

import "context"

// PaymentRepository defines data access methods for payment details.
type PaymentRepository interface {
	// GetForUpdate locks the row for the (periodID, employeeID) composite key
	// so a concurrent writer fails cleanly instead of overwriting silently.
	GetForUpdate(ctx context.Context, periodID, employeeID string) (PaymentDetail, error)
	Upsert(ctx context.Context, detail PaymentDetail) (PaymentDetail, error)
	ListByPeriod(ctx context.Context, periodID string) ([]PaymentDetail, error)
	// CountUnfinalizedWithAmount reports rows under the period that carry a
	// positive amount but are not yet finalized.
	CountUnfinalizedWithAmount(ctx context.Context, periodID string) (int, error)
}
