package invoice

import "errors"

var (
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNotBillable         = errors.New("appointment is not billable")
	ErrForbidden           = errors.New("operation not allowed")
	ErrInvalidStatus       = errors.New("invalid invoice status transition")
	ErrValidation          = errors.New("validation failed")
)
