package repositories

import "errors"

// ErrNotFound is returned when no document matched the given id.
var ErrNotFound = errors.New("not found")
