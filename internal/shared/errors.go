package shared

import "fmt"

var (
	// Storage errors
	ErrNotFound           = fmt.Errorf("record not found")
	ErrDuplicateKey       = fmt.Errorf("duplicate key")
	ErrStorageUnavailable = fmt.Errorf("storage unavailable")

	// Validation errors
	ErrValidation = fmt.Errorf("validation failed")

	// File errors
	ErrIO = fmt.Errorf("i/o failure")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
