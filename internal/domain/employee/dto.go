package employee

import "github.com/workdocs/leave-engine-go/internal/pkg/validator"

type CreateEmployeeRequest struct {
	FullName      string `json:"full_name"`
	WorksSaturday bool   `json:"works_saturday"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SaturdayPolicyRequest toggles whether Saturdays count as working days for
// an employee. A pointer so an absent field is distinguishable from false.
type SaturdayPolicyRequest struct {
	WorksSaturday *bool `json:"works_saturday"`
}

func (r *SaturdayPolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WorksSaturday == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "works_saturday",
			Message: "works_saturday is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
