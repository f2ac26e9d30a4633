package leave

import (
	"context"
	"fmt"
	"time"

	activityService "github.com/workdocs/leave-engine-go/internal/service/activity"

	"github.com/workdocs/leave-engine-go/internal/domain/activity"
	"github.com/workdocs/leave-engine-go/internal/domain/employee"
	"github.com/workdocs/leave-engine-go/internal/domain/leave"
	"github.com/workdocs/leave-engine-go/internal/pkg/database"
	"github.com/workdocs/leave-engine-go/internal/repository/postgresql"
)

const activityEntityLeaveRequest = "leave_request"

// RequestService drives the absence request lifecycle:
// pending -> approved (terminal) or pending -> rejected (terminal).
type RequestService struct {
	db *database.DB
	leave.RequestRepository
	leave.EntitlementRepository
	employee.EmployeeRepository
	activity *activityService.Service
}

func NewRequestService(
	db *database.DB,
	requestRepository leave.RequestRepository,
	entitlementRepository leave.EntitlementRepository,
	employeeRepository employee.EmployeeRepository,
	activitySvc *activityService.Service,
) *RequestService {
	return &RequestService{
		db:                    db,
		RequestRepository:     requestRepository,
		EntitlementRepository: entitlementRepository,
		EmployeeRepository:    employeeRepository,
		activity:              activitySvc,
	}
}

// Create validates the range and justification rule, snapshots the working
// day count, enforces the balance invariant, and persists the request with
// its exception set in one transaction.
//
// The balance check is uniform across call paths; admin_override is the one
// sanctioned way to exceed the remaining balance.
func (s *RequestService) Create(ctx context.Context, req leave.CreateRequestRequest, actorID *string) (leave.Request, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.Request{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	exclusions, err := req.ParseExclusions()
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to parse excluded dates: %w", err)
	}

	days, err := CountWorkingDays(startDate, endDate, emp.WorksSaturday, exclusions)
	if err != nil {
		return leave.Request{}, err
	}

	if err := s.checkBalance(ctx, req.EmployeeID, startDate.Year(), days, req.AdminOverride); err != nil {
		return leave.Request{}, err
	}

	request := leave.Request{
		EmployeeID:    req.EmployeeID,
		StartDate:     startDate,
		EndDate:       endDate,
		DaysRequested: days,
		LeaveType:     leave.LeaveType(req.LeaveType),
		Reason:        req.Reason,
		Status:        leave.RequestStatusPending,
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err := s.RequestRepository.Create(txCtx, request)
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		request = created

		if err := s.RequestRepository.ReplaceExcludedDates(txCtx, created.ID, exclusions); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return leave.Request{}, err
	}

	s.activity.Record(ctx, activityEntityLeaveRequest, request.ID, activity.ActionCreate, actorID)

	return s.RequestRepository.GetByID(ctx, request.ID)
}

// Update edits a pending request. The day count snapshot is recomputed with
// the current policy and the replacement exception set; approved and
// rejected requests are immutable (delete and recreate instead).
func (s *RequestService) Update(ctx context.Context, req leave.UpdateRequestRequest, actorID *string) (leave.Request, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	exclusions, err := req.ParseExclusions()
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to parse excluded dates: %w", err)
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		existing, err := s.RequestRepository.GetByIDForUpdate(txCtx, req.ID)
		if err != nil {
			return err
		}
		if existing.Status != leave.RequestStatusPending {
			return leave.ErrRequestNotEditable
		}

		emp, err := s.EmployeeRepository.GetByID(txCtx, existing.EmployeeID)
		if err != nil {
			return err
		}

		days, err := CountWorkingDays(startDate, endDate, emp.WorksSaturday, exclusions)
		if err != nil {
			return err
		}

		if err := s.checkBalance(txCtx, existing.EmployeeID, startDate.Year(), days, req.AdminOverride); err != nil {
			return err
		}

		updated := existing
		updated.StartDate = startDate
		updated.EndDate = endDate
		updated.DaysRequested = days
		updated.LeaveType = leave.LeaveType(req.LeaveType)
		updated.Reason = req.Reason

		if err := s.RequestRepository.Update(txCtx, updated); err != nil {
			return err
		}
		return s.RequestRepository.ReplaceExcludedDates(txCtx, req.ID, exclusions)
	})
	if err != nil {
		return leave.Request{}, err
	}

	s.activity.Record(ctx, activityEntityLeaveRequest, req.ID, activity.ActionUpdate, actorID)

	return s.RequestRepository.GetByID(ctx, req.ID)
}

// Approve flips a pending request to approved and debits the ledger for the
// year of the start date. Both writes happen in one transaction under the
// locked request row, so a crash can never leave an approved request with an
// un-debited ledger.
func (s *RequestService) Approve(ctx context.Context, requestID string, actorID *string) (leave.Request, error) {
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		request, err := s.RequestRepository.GetByIDForUpdate(txCtx, requestID)
		if err != nil {
			return err
		}
		if request.Status != leave.RequestStatusPending {
			return leave.ErrAlreadyProcessed
		}

		year := request.StartDate.Year()
		if _, err := s.EntitlementRepository.GetOrCreate(txCtx, request.EmployeeID, year, leave.DefaultAnnualFund); err != nil {
			return fmt.Errorf("failed to materialize entitlement: %w", err)
		}

		now := time.Now()
		if err := s.RequestRepository.UpdateStatus(txCtx, requestID, leave.RequestStatusApproved, &now); err != nil {
			return err
		}

		if err := s.EntitlementRepository.AddUsedDays(txCtx, request.EmployeeID, year, request.DaysRequested); err != nil {
			return fmt.Errorf("failed to debit entitlement: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.Request{}, err
	}

	s.activity.Record(ctx, activityEntityLeaveRequest, requestID, activity.ActionApprove, actorID)

	return s.RequestRepository.GetByID(ctx, requestID)
}

// Reject flips a pending request to rejected. No ledger effect.
func (s *RequestService) Reject(ctx context.Context, requestID string, actorID *string) (leave.Request, error) {
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		request, err := s.RequestRepository.GetByIDForUpdate(txCtx, requestID)
		if err != nil {
			return err
		}
		if request.Status != leave.RequestStatusPending {
			return leave.ErrAlreadyProcessed
		}

		return s.RequestRepository.UpdateStatus(txCtx, requestID, leave.RequestStatusRejected, nil)
	})
	if err != nil {
		return leave.Request{}, err
	}

	s.activity.Record(ctx, activityEntityLeaveRequest, requestID, activity.ActionReject, actorID)

	return s.RequestRepository.GetByID(ctx, requestID)
}

// Delete removes a request and its exception rows. Deleting an approved
// request credits the debited days back to the ledger in the same
// transaction.
func (s *RequestService) Delete(ctx context.Context, requestID string, actorID *string) error {
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		request, err := s.RequestRepository.GetByIDForUpdate(txCtx, requestID)
		if err != nil {
			return err
		}

		if request.Status == leave.RequestStatusApproved {
			year := request.StartDate.Year()
			if err := s.EntitlementRepository.AddUsedDays(txCtx, request.EmployeeID, year, -request.DaysRequested); err != nil {
				return fmt.Errorf("failed to credit entitlement back: %w", err)
			}
		}

		return s.RequestRepository.Delete(txCtx, requestID)
	})
	if err != nil {
		return err
	}

	s.activity.Record(ctx, activityEntityLeaveRequest, requestID, activity.ActionDelete, actorID)

	return nil
}

func (s *RequestService) Get(ctx context.Context, requestID string) (leave.Request, error) {
	return s.RequestRepository.GetByID(ctx, requestID)
}

func (s *RequestService) List(ctx context.Context, filter leave.RequestFilter) ([]leave.Request, int64, error) {
	return s.RequestRepository.List(ctx, filter)
}

// PreviewResult is the interactive counterpart of Create: the same
// calculation, plus the enumerations a caller needs to build an override set.
type PreviewResult struct {
	DaysRequested int
	Days          []DayClassification
	Saturdays     []time.Time
	Weekdays      []time.Time
}

// Preview runs the working-day calculation without persisting anything. The
// employee's Saturday policy is resolved here, from the same source Create
// uses, so preview and submission cannot drift.
func (s *RequestService) Preview(ctx context.Context, req leave.PreviewRequest) (PreviewResult, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return PreviewResult{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return PreviewResult{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return PreviewResult{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	exclusions, err := req.ParseExclusions()
	if err != nil {
		return PreviewResult{}, fmt.Errorf("failed to parse excluded dates: %w", err)
	}

	days, err := ClassifyDays(startDate, endDate, emp.WorksSaturday, exclusions)
	if err != nil {
		return PreviewResult{}, err
	}

	count := 0
	for _, day := range days {
		if day.Counted {
			count++
		}
	}

	return PreviewResult{
		DaysRequested: count,
		Days:          days,
		Saturdays:     SaturdaysInRange(startDate, endDate),
		Weekdays:      WeekdaysInRange(startDate, endDate),
	}, nil
}

func (s *RequestService) checkBalance(ctx context.Context, employeeID string, year, days int, adminOverride bool) error {
	ent, err := s.EntitlementRepository.GetOrCreate(ctx, employeeID, year, leave.DefaultAnnualFund)
	if err != nil {
		return fmt.Errorf("failed to load entitlement: %w", err)
	}

	if days > ent.Balance() && !adminOverride {
		return fmt.Errorf("%d days requested but only %d remaining for %d: %w",
			days, ent.Balance(), year, leave.ErrInsufficientBalance)
	}
	return nil
}
