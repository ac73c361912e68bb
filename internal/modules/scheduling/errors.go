package scheduling

import "errors"

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrPetNotFound         = errors.New("pet not found")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrCustomerNotFound    = errors.New("customer not found")

	ErrForbidden = errors.New("access denied")

	ErrServiceInactive  = errors.New("service is inactive")
	ErrSlotTaken        = errors.New("slot is no longer available")
	ErrNoStaffAvailable = errors.New("no staff available for this slot")
	ErrStaffUnavailable = errors.New("the selected employee is no longer available")
	ErrTooLateToCancel  = errors.New("cancellation window has passed")
	ErrNotCancellable   = errors.New("appointment can no longer be cancelled")

	ErrValidation = errors.New("validation error")
)
