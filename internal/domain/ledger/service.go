package ledger

import "context"

type LedgerService interface {
	RecordPayment(ctx context.Context, req RecordPaymentRequest) (PaymentDetailResponse, error)
	ListByPeriod(ctx context.Context, periodID string) ([]PaymentDetailResponse, error)
}
