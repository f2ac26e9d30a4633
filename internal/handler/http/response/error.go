package response

import (
	"errors"
	"net/http"

	"github.com/workdocs/leave-engine-go/internal/domain/employee"
	"github.com/workdocs/leave-engine-go/internal/domain/leave"
	"github.com/workdocs/leave-engine-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Error messages name the
// violated invariant; the wrapped err.Error() carries the specifics (year,
// remaining days).
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrEntitlementNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrRequestNotEditable):
		Conflict(w, "Only pending leave requests can be edited")
	case errors.Is(err, leave.ErrNothingToCarryOver):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrCarryOverAlreadyDone):
		Conflict(w, "Carry-over already performed for this year pair")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
