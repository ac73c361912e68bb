package review

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrForbidden           = errors.New("operation not allowed")
	ErrNotReviewable       = errors.New("appointment cannot be reviewed yet")
	ErrAlreadyReviewed     = errors.New("appointment already reviewed")
	ErrValidation          = errors.New("validation failed")
)
