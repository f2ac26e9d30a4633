package leave

import "errors"

var (
	ErrRequestNotFound      = errors.New("Leave request not found")
	ErrEntitlementNotFound  = errors.New("Leave entitlement not found")
	ErrAlreadyProcessed     = errors.New("Leave request already processed")
	ErrRequestNotEditable   = errors.New("Only pending leave requests can be edited")
	ErrInsufficientBalance  = errors.New("Insufficient leave balance")
	ErrNothingToCarryOver   = errors.New("Nothing to carry over")
	ErrCarryOverAlreadyDone = errors.New("Carry-over already performed for this year pair")
	ErrInvalidDateRange     = errors.New("Start date must not be after end date")
)
