package leave

import (
	"context"
	"fmt"

	"github.com/workdocs/leave-engine-go/internal/domain/employee"
	"github.com/workdocs/leave-engine-go/internal/domain/leave"
	"github.com/workdocs/leave-engine-go/internal/pkg/database"
	"github.com/workdocs/leave-engine-go/internal/repository/postgresql"
)

// EntitlementService owns the per-(employee, year) ledger rows: lazy
// materialization, manual adjustment, and the carry-over operation.
type EntitlementService struct {
	db *database.DB
	leave.EntitlementRepository
	leave.CarryOverRepository
	employee.EmployeeRepository
}

func NewEntitlementService(
	db *database.DB,
	entitlementRepository leave.EntitlementRepository,
	carryOverRepository leave.CarryOverRepository,
	employeeRepository employee.EmployeeRepository,
) *EntitlementService {
	return &EntitlementService{
		db:                    db,
		EntitlementRepository: entitlementRepository,
		CarryOverRepository:   carryOverRepository,
		EmployeeRepository:    employeeRepository,
	}
}

// GetOrInit returns the entitlement for (employeeID, year), materializing a
// default row (fund of 20, everything else zero) on first touch. Every call
// path goes through this one policy.
func (s *EntitlementService) GetOrInit(ctx context.Context, employeeID string, year int) (leave.Entitlement, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return leave.Entitlement{}, err
	}

	ent, err := s.EntitlementRepository.GetOrCreate(ctx, employeeID, year, leave.DefaultAnnualFund)
	if err != nil {
		return leave.Entitlement{}, fmt.Errorf("failed to get or create entitlement: %w", err)
	}

	return ent, nil
}

// ApplyManualAdjustment overwrites the two admin-editable fields. used_days
// is never touched here.
func (s *EntitlementService) ApplyManualAdjustment(ctx context.Context, req leave.AdjustEntitlementRequest) (leave.Entitlement, error) {
	if _, err := s.GetOrInit(ctx, req.EmployeeID, req.Year); err != nil {
		return leave.Entitlement{}, err
	}

	if err := s.EntitlementRepository.UpdateAdjustments(ctx, req.EmployeeID, req.Year, req.CarriedOverDays, req.ManualAdjustmentDays); err != nil {
		return leave.Entitlement{}, fmt.Errorf("failed to apply manual adjustment: %w", err)
	}

	return s.EntitlementRepository.GetByEmployeeYear(ctx, req.EmployeeID, req.Year)
}

func (s *EntitlementService) Get(ctx context.Context, employeeID string, year int) (leave.Entitlement, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return leave.Entitlement{}, err
	}
	return s.EntitlementRepository.GetByEmployeeYear(ctx, employeeID, year)
}

func (s *EntitlementService) ListForEmployee(ctx context.Context, employeeID string) ([]leave.Entitlement, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.EntitlementRepository.ListByEmployee(ctx, employeeID)
}

// CarryOver moves the remaining balance of from_year into to_year's
// carried_over_days, in one transaction. The audit row written first makes a
// repeat invocation a reported no-op instead of a double-add.
func (s *EntitlementService) CarryOver(ctx context.Context, req leave.CarryOverRequest) (leave.CarryOver, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.CarryOver{}, err
	}

	var result leave.CarryOver

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		// Lock the source row so the remaining balance cannot be debited by
		// a concurrent approval between this read and the commit.
		source, err := s.EntitlementRepository.GetByEmployeeYearForUpdate(txCtx, req.EmployeeID, req.FromYear)
		if err != nil {
			return fmt.Errorf("no entitlement configured for %d: %w", req.FromYear, err)
		}

		remaining := source.Balance()
		if remaining <= 0 {
			return fmt.Errorf("no remaining balance for %d: %w", req.FromYear, leave.ErrNothingToCarryOver)
		}

		result, err = s.CarryOverRepository.Record(txCtx, leave.CarryOver{
			EmployeeID: req.EmployeeID,
			FromYear:   req.FromYear,
			ToYear:     req.ToYear,
			Days:       remaining,
		})
		if err != nil {
			return err
		}

		if _, err := s.EntitlementRepository.GetOrCreate(txCtx, req.EmployeeID, req.ToYear, leave.DefaultAnnualFund); err != nil {
			return fmt.Errorf("failed to materialize destination entitlement: %w", err)
		}

		if err := s.EntitlementRepository.AddCarriedOverDays(txCtx, req.EmployeeID, req.ToYear, remaining); err != nil {
			return fmt.Errorf("failed to credit carried-over days: %w", err)
		}

		return nil
	})
	if err != nil {
		return leave.CarryOver{}, err
	}

	return result, nil
}

func (s *EntitlementService) CarryOverHistory(ctx context.Context, employeeID string) ([]leave.CarryOver, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.CarryOverRepository.ListByEmployee(ctx, employeeID)
}
