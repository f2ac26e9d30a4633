package leave

import (
	"strings"
	"time"

	"github.com/workdocs/leave-engine-go/internal/pkg/validator"
)

type ExcludedDateInput struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

func validateExclusions(exclusions []ExcludedDateInput, reason string, errs validator.ValidationErrors) validator.ValidationErrors {
	seen := make(map[string]bool)
	needsJustification := false

	for i, ex := range exclusions {
		field := "excluded_dates[" + validator.Itoa(i) + "]"

		if _, ok := validator.IsValidDate(ex.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".date",
				Message: "date must be in YYYY-MM-DD format",
			})
		} else if seen[ex.Date] {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".date",
				Message: "duplicate excluded date " + ex.Date,
			})
		}
		seen[ex.Date] = true

		valid := false
		for _, r := range AllExclusionReasons() {
			if ex.Reason == string(r) {
				valid = true
				break
			}
		}
		if !valid {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".reason",
				Message: "reason must be one of non_working_saturday, working_saturday, non_working_weekday",
			})
		}

		if ex.Reason == string(ExclusionNonWorkingWeekday) {
			needsJustification = true
		}
	}

	if needsJustification && len(strings.TrimSpace(reason)) < MinWeekdayExclusionReasonLen {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason of at least " + validator.Itoa(MinWeekdayExclusionReasonLen) + " characters is required when excluding a weekday",
		})
	}

	return errs
}

func validateDateRange(startDate, endDate string, errs validator.ValidationErrors) validator.ValidationErrors {
	start, startOK := validator.IsValidDate(startDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(endDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must not be after end_date",
		})
	}

	return errs
}

type CreateRequestRequest struct {
	EmployeeID    string              `json:"employee_id"`
	StartDate     string              `json:"start_date"`
	EndDate       string              `json:"end_date"`
	LeaveType     string              `json:"leave_type"`
	Reason        string              `json:"reason,omitempty"`
	AdminOverride bool                `json:"admin_override,omitempty"`
	ExcludedDates []ExcludedDateInput `json:"excluded_dates,omitempty"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	errs = validateDateRange(r.StartDate, r.EndDate, errs)

	validType := false
	for _, lt := range AllLeaveTypes() {
		if r.LeaveType == string(lt) {
			validType = true
			break
		}
	}
	if !validType {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of annual, sick, unpaid, other",
		})
	}

	errs = validateExclusions(r.ExcludedDates, r.Reason, errs)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParseExclusions converts the validated inputs to domain exclusions.
func (r *CreateRequestRequest) ParseExclusions() ([]ExcludedDate, error) {
	return parseExclusions(r.ExcludedDates)
}

type UpdateRequestRequest struct {
	ID            string              `json:"leave_request_id"`
	StartDate     string              `json:"start_date"`
	EndDate       string              `json:"end_date"`
	LeaveType     string              `json:"leave_type"`
	Reason        string              `json:"reason,omitempty"`
	AdminOverride bool                `json:"admin_override,omitempty"`
	ExcludedDates []ExcludedDateInput `json:"excluded_dates,omitempty"`
}

func (r *UpdateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_request_id",
			Message: "leave_request_id is required",
		})
	}

	errs = validateDateRange(r.StartDate, r.EndDate, errs)

	validType := false
	for _, lt := range AllLeaveTypes() {
		if r.LeaveType == string(lt) {
			validType = true
			break
		}
	}
	if !validType {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of annual, sick, unpaid, other",
		})
	}

	errs = validateExclusions(r.ExcludedDates, r.Reason, errs)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *UpdateRequestRequest) ParseExclusions() ([]ExcludedDate, error) {
	return parseExclusions(r.ExcludedDates)
}

func parseExclusions(inputs []ExcludedDateInput) ([]ExcludedDate, error) {
	exclusions := make([]ExcludedDate, 0, len(inputs))
	for _, in := range inputs {
		date, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, err
		}
		exclusions = append(exclusions, ExcludedDate{
			Date:   date,
			Reason: ExclusionReason(in.Reason),
		})
	}
	return exclusions, nil
}

// PreviewRequest asks for a working-day count and per-date classification
// without persisting anything. The employee's Saturday policy is resolved
// server-side so the preview and the later submission cannot drift.
type PreviewRequest struct {
	EmployeeID    string              `json:"employee_id"`
	StartDate     string              `json:"start_date"`
	EndDate       string              `json:"end_date"`
	ExcludedDates []ExcludedDateInput `json:"excluded_dates,omitempty"`
}

func (r *PreviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	errs = validateDateRange(r.StartDate, r.EndDate, errs)

	for i, ex := range r.ExcludedDates {
		field := "excluded_dates[" + validator.Itoa(i) + "]"
		if _, ok := validator.IsValidDate(ex.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
		valid := false
		for _, reason := range AllExclusionReasons() {
			if ex.Reason == string(reason) {
				valid = true
				break
			}
		}
		if !valid {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".reason",
				Message: "reason must be one of non_working_saturday, working_saturday, non_working_weekday",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *PreviewRequest) ParseExclusions() ([]ExcludedDate, error) {
	return parseExclusions(r.ExcludedDates)
}

// AdjustEntitlementRequest overwrites the two admin-editable ledger fields.
type AdjustEntitlementRequest struct {
	EmployeeID           string `json:"employee_id"`
	Year                 int    `json:"year"`
	CarriedOverDays      int    `json:"carried_over_days"`
	ManualAdjustmentDays int    `json:"manual_adjustment_days"`
}

func (r *AdjustEntitlementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Year <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CarryOverRequest struct {
	EmployeeID string `json:"employee_id"`
	FromYear   int    `json:"from_year"`
	ToYear     int    `json:"to_year"`
}

func (r *CarryOverRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.FromYear <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "from_year",
			Message: "from_year must be a positive integer",
		})
	}

	if r.ToYear <= r.FromYear {
		errs = append(errs, validator.ValidationError{
			Field:   "to_year",
			Message: "to_year must be after from_year",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
