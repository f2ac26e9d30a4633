package leave

import "time"

// DefaultAnnualFund is the fund assigned when an entitlement row is
// materialized lazily for a year that has never been configured.
const DefaultAnnualFund = 20

// MinWeekdayExclusionReasonLen is the minimum length of the request reason
// when any weekday is excluded from the count.
const MinWeekdayExclusionReasonLen = 10

type LeaveType string

const (
	LeaveTypeAnnual LeaveType = "annual"
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeUnpaid LeaveType = "unpaid"
	LeaveTypeOther  LeaveType = "other"
)

func AllLeaveTypes() []LeaveType {
	return []LeaveType{LeaveTypeAnnual, LeaveTypeSick, LeaveTypeUnpaid, LeaveTypeOther}
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// ExclusionReason classifies a per-date override on a request.
type ExclusionReason string

const (
	// ExclusionNonWorkingSaturday excludes a Saturday the employee would
	// normally work.
	ExclusionNonWorkingSaturday ExclusionReason = "non_working_saturday"
	// ExclusionWorkingSaturday includes a Saturday the employee would
	// normally not work.
	ExclusionWorkingSaturday ExclusionReason = "working_saturday"
	// ExclusionNonWorkingWeekday excludes a normally-working weekday.
	// Requires a justification on the request.
	ExclusionNonWorkingWeekday ExclusionReason = "non_working_weekday"
)

func AllExclusionReasons() []ExclusionReason {
	return []ExclusionReason{
		ExclusionNonWorkingSaturday,
		ExclusionWorkingSaturday,
		ExclusionNonWorkingWeekday,
	}
}

// Entitlement is one ledger row per (employee, year). The balance is always
// derived, never stored.
type Entitlement struct {
	ID         string
	EmployeeID string
	Year       int

	TotalDays            int
	CarriedOverDays      int
	ManualAdjustmentDays int
	UsedDays             int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Balance returns fund + carry-over + adjustment - used.
func (e Entitlement) Balance() int {
	return e.TotalDays + e.CarriedOverDays + e.ManualAdjustmentDays - e.UsedDays
}

// ExcludedDate is a per-date override attached to a request. The set is
// replaced wholesale whenever the request is edited.
type ExcludedDate struct {
	ID             string
	LeaveRequestID string
	Date           time.Time
	Reason         ExclusionReason
}

// Request is an absence request. DaysRequested is a snapshot computed at
// create/update time and is never recomputed afterwards, even if the
// employee's Saturday policy changes later.
type Request struct {
	ID         string
	EmployeeID string

	StartDate     time.Time
	EndDate       time.Time
	DaysRequested int
	LeaveType     LeaveType
	Reason        string

	Status     RequestStatus
	ApprovedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	ExcludedDates []ExcludedDate

	// Relationships (for responses)
	EmployeeName *string
}

// CarryOver is the audit record that makes the carry-over operation
// idempotent: at most one row per (employee, from_year, to_year).
type CarryOver struct {
	ID         string
	EmployeeID string
	FromYear   int
	ToYear     int
	Days       int

	CreatedAt time.Time
}
