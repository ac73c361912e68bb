package pets

import "errors"

var (
	ErrPetNotFound      = errors.New("pet not found")
	ErrBreedNotFound    = errors.New("breed not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrForbidden        = errors.New("operation not allowed")
	ErrValidation       = errors.New("validation failed")
)
