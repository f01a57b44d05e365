package paycycle

import "context"

// CycleSettingRepository defines data access methods for pay cycle settings.
type CycleSettingRepository interface {
	Create(ctx context.Context, setting CycleSetting) (CycleSetting, error)
	GetByID(ctx context.Context, id string) (CycleSetting, error)
	GetByName(ctx context.Context, name string) (CycleSetting, error)
	List(ctx context.Context) ([]CycleSetting, error)
	Update(ctx context.Context, setting CycleSetting) (CycleSetting, error)
}
