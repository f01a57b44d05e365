package paycycle

import "context"

type CycleSettingService interface {
	Create(ctx context.Context, req CreateCycleSettingRequest) (CycleSettingResponse, error)
	Update(ctx context.Context, req UpdateCycleSettingRequest) (CycleSettingResponse, error)
	GetByID(ctx context.Context, id string) (CycleSettingResponse, error)
	List(ctx context.Context) ([]CycleSettingResponse, error)
}
