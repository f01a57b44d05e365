package audit

import (
	"context"

	"github.com/asifshaikgit/workforce-sub004/internal/domain/audit"
	"github.com/asifshaikgit/workforce-sub004/internal/domain/employee"
)

const defaultPageSize = 20

type TrailServiceImpl struct {
	trailRepo    audit.TrailRepository
	employeeRepo employee.EmployeeRepository
}

func NewTrailService(trailRepo audit.TrailRepository, employeeRepo employee.EmployeeRepository) audit.TrailService {
	return &TrailServiceImpl{trailRepo: trailRepo, employeeRepo: employeeRepo}
}

func (s *TrailServiceImpl) ListByEmployee(ctx context.Context, employeeID string, page, limit int) ([]audit.BalanceAuditEntryResponse, int64, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	offset := (page - 1) * limit

	entries, total, err := s.trailRepo.ListByEmployee(ctx, employeeID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]audit.BalanceAuditEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, audit.NewBalanceAuditEntryResponse(entry))
	}
	return responses, total, nil
}
