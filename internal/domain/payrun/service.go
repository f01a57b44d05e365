package payrun

import "context"

type PayRunService interface {
	// Generate drafts the next period under a setting: the earliest seeded
	// instance if one is still ungenerated, otherwise a new contiguous
	// period derived from the cycle rules.
	Generate(ctx context.Context, settingsID string) (PeriodInstanceResponse, error)
	Submit(ctx context.Context, instanceID string) (PeriodInstanceResponse, error)
	Skip(ctx context.Context, instanceID string) (PeriodInstanceResponse, error)
	GetByID(ctx context.Context, instanceID string) (PeriodInstanceResponse, error)
	ListBySettings(ctx context.Context, settingsID string) ([]PeriodInstanceResponse, error)
}
