package employee

import "context"

type EmployeeService interface {
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	UpdateCompensation(ctx context.Context, req UpdateCompensationRequest) (EmployeeResponse, error)
}
