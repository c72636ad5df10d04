package repositories

import "errors"

// Sentinel errors shared by every repository implementation. Callers test
// for them with errors.Is.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)
