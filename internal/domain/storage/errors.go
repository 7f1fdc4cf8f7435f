// Package storage defines the sentinel errors every repository
// implementation reports for constraint outcomes, so services can translate
// them without knowing which backend is underneath.
package storage

import "errors"

var (
	// ErrNotFound reports that no row matched the lookup or conditional write.
	ErrNotFound = errors.New("row not found")

	// ErrDuplicate reports a unique constraint violation.
	ErrDuplicate = errors.New("unique constraint violated")

	// ErrProtected reports a delete blocked by a protecting foreign key.
	ErrProtected = errors.New("row is referenced by protected relations")
)
