package leave

import (
	"context"
	"time"
)

// EntitlementRepository - interface for the leave_entitlements table.
// AddUsedDays is a single atomic UPDATE on used_days; callers run it inside
// a transaction together with the status transition it belongs to.
type EntitlementRepository interface {
	GetByEmployeeYear(ctx context.Context, employeeID string, year int) (Entitlement, error)
	// GetByEmployeeYearForUpdate locks the ledger row for the duration of
	// the surrounding transaction, so the read serializes with concurrent
	// AddUsedDays writers.
	GetByEmployeeYearForUpdate(ctx context.Context, employeeID string, year int) (Entitlement, error)
	// GetOrCreate materializes the row with the given fund if it does not
	// exist yet. Safe under concurrent first touch.
	GetOrCreate(ctx context.Context, employeeID string, year, totalDays int) (Entitlement, error)
	// UpdateAdjustments overwrites carried_over_days and
	// manual_adjustment_days. It never touches used_days.
	UpdateAdjustments(ctx context.Context, employeeID string, year, carriedOverDays, manualAdjustmentDays int) error
	AddCarriedOverDays(ctx context.Context, employeeID string, year, days int) error
	// AddUsedDays increments used_days by days; negative days credit back.
	AddUsedDays(ctx context.Context, employeeID string, year, days int) error
	ListByEmployee(ctx context.Context, employeeID string) ([]Entitlement, error)
}

// RequestFilter narrows List results.
type RequestFilter struct {
	EmployeeID *string
	Status     *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
}

// RequestRepository - interface for leave_requests and its excluded-date
// child rows.
type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	// GetByIDForUpdate locks the request row for the duration of the
	// surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter RequestFilter) ([]Request, int64, error)
	Update(ctx context.Context, req Request) error
	UpdateStatus(ctx context.Context, id string, status RequestStatus, approvedAt *time.Time) error
	Delete(ctx context.Context, id string) error

	// ReplaceExcludedDates deletes and rewrites the exception set.
	ReplaceExcludedDates(ctx context.Context, requestID string, dates []ExcludedDate) error
	GetExcludedDates(ctx context.Context, requestID string) ([]ExcludedDate, error)

	// ListApprovedIntersecting returns approved requests whose date range
	// intersects [from, to].
	ListApprovedIntersecting(ctx context.Context, from, to time.Time) ([]Request, error)
}

// CarryOverRepository - interface for the leave_carry_overs audit table.
type CarryOverRepository interface {
	// Record inserts the audit row. Returns ErrCarryOverAlreadyDone when a
	// row for (employee, from_year, to_year) already exists.
	Record(ctx context.Context, co CarryOver) (CarryOver, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]CarryOver, error)
}
