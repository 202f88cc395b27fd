package snapshot

import (
	"errors"
	"fmt"

	"position-sync/feature/positions/models"
)

var (
	// ErrFileNotFound is returned when the snapshot path names no existing file.
	ErrFileNotFound = errors.New("snapshot file not found")
	// ErrEmptySnapshot is returned when the document contains zero position entries.
	ErrEmptySnapshot = errors.New("snapshot contains no positions")
	// ErrMalformedEntry is returned when a position element lacks a required field.
	ErrMalformedEntry = errors.New("snapshot entry missing required field")
)

// DuplicateKeyError reports the first natural key seen twice in a snapshot.
// Parsing stops at the duplicate; later entries are never examined.
type DuplicateKeyError struct {
	Key models.Key
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate natural key in snapshot: %s", e.Key)
}
