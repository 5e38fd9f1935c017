package interviews

import "errors"

var (
	ErrNotFound          = errors.New("interview not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrValidation        = errors.New("invalid answer payload")
)
