package repo_errors

import "errors"

var (
	ErrNotFound = errors.New("entity not found")

	// ErrConflict means a conditional write found its guard no longer true at
	// commit time. The whole unit is rolled back, nothing is applied.
	ErrConflict = errors.New("stored state changed since it was read")
)
