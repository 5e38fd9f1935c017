package careers

import "errors"

// ErrNotFound is returned when a career does not exist.
var ErrNotFound = errors.New("career not found")
