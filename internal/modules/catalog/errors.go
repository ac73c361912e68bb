package catalog

import "errors"

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrValidation       = errors.New("validation error")
)
