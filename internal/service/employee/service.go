package employee

import (
	"context"
	"fmt"

	"github.com/workdocs/leave-engine-go/internal/domain/activity"
	"github.com/workdocs/leave-engine-go/internal/domain/employee"
	activityService "github.com/workdocs/leave-engine-go/internal/service/activity"
)

const activityEntityEmployee = "employee"

// Service manages the employee roster and the per-employee Saturday policy
// that feeds the working-day calculator.
type Service struct {
	employee.EmployeeRepository
	activity *activityService.Service
}

func NewService(employeeRepository employee.EmployeeRepository, activitySvc *activityService.Service) *Service {
	return &Service{
		EmployeeRepository: employeeRepository,
		activity:           activitySvc,
	}
}

func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest, actorID *string) (employee.Employee, error) {
	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		FullName:      req.FullName,
		WorksSaturday: req.WorksSaturday,
	})
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	s.activity.Record(ctx, activityEntityEmployee, created.ID, activity.ActionCreate, actorID)

	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.EmployeeRepository.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]employee.Employee, error) {
	return s.EmployeeRepository.List(ctx)
}

// SetSaturdayPolicy flips the works_saturday flag. Existing requests keep
// their day count snapshot; only future calculations see the new policy.
func (s *Service) SetSaturdayPolicy(ctx context.Context, id string, worksSaturday bool, actorID *string) (employee.Employee, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		return employee.Employee{}, err
	}

	if err := s.EmployeeRepository.SetWorksSaturday(ctx, id, worksSaturday); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update saturday policy: %w", err)
	}

	s.activity.Record(ctx, activityEntityEmployee, id, activity.ActionUpdate, actorID)

	return s.EmployeeRepository.GetByID(ctx, id)
}
