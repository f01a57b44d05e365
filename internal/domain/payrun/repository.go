package payrun

import (
	"context"
	"time"
)

// PeriodRepository defines data access methods for pay period instances.
//
// The *ForUpdate variants take row locks and are only meaningful inside a
// transaction; the state machine relies on them so two concurrent
// resolutions under one setting cannot both pass the ordering check.
type PeriodRepository interface {
	Create(ctx context.Context, instance PeriodInstance) (PeriodInstance, error)
	GetByID(ctx context.Context, id string) (PeriodInstance, error)
	GetByIDForUpdate(ctx context.Context, id string) (PeriodInstance, error)
	GetBySettingsAndFromDate(ctx context.Context, settingsID string, fromDate time.Time) (PeriodInstance, error)
	// LastBySettings returns the instance with the latest from date under a
	// setting, locking it against concurrent generation.
	LastBySettings(ctx context.Context, settingsID string) (PeriodInstance, error)
	ListBySettings(ctx context.Context, settingsID string) ([]PeriodInstance, error)
	// FirstUngenerated returns the earliest yet_to_generate instance under a
	// setting, locked, so generation drafts periods strictly in order.
	FirstUngenerated(ctx context.Context, settingsID string) (PeriodInstance, error)
	// EarlierUnresolvedForUpdate locks every instance under settingsID with a
	// from date before fromDate and returns how many of them are unresolved.
	EarlierUnresolvedForUpdate(ctx context.Context, settingsID string, fromDate time.Time) (int, error)
	UpdateStatus(ctx context.Context, id string, status PeriodStatus) error
	AnyAdvanced(ctx context.Context, settingsID string) (bool, error)
	// DeleteUngenerated removes yet_to_generate seeds so a settings update can
	// reseed them; generated instances are never deleted.
	DeleteUngenerated(ctx context.Context, settingsID string) error
}
