package employee

import "context"

// EmployeeRepository defines data access methods for the employee directory.
type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetByIDForUpdate locks the employee row; balance mutations read the
	// snapshot and write the new value under this lock.
	GetByIDForUpdate(ctx context.Context, id string) (Employee, error)
	UpdateCompensation(ctx context.Context, e Employee) (Employee, error)
}
