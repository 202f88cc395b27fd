package snapshot

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"position-sync/feature/positions/models"
)

// xmlPosition mirrors a <position> element. Fields are pointers so that an
// absent child element can be told apart from an empty one.
type xmlPosition struct {
	DepCode     *string `xml:"depCode"`
	DepJob      *string `xml:"depJob"`
	Description *string `xml:"description"`
}

// Parse reads the XML snapshot at path into a Snapshot keyed by natural key.
//
// It fails with ErrFileNotFound, ErrEmptySnapshot, ErrMalformedEntry or
// *DuplicateKeyError; duplicate detection is eager, so the first repeated
// key aborts the parse immediately. Parse never touches the database.
func Parse(path string) (models.Snapshot, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("stat snapshot: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	snap := make(models.Snapshot)
	dec := xml.NewDecoder(f)
	entry := 0

	// Token-stream decode so the duplicate check runs per element, before
	// anything past the duplicate is examined.
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode snapshot: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "position" {
			continue
		}

		entry++
		var p xmlPosition
		if err := dec.DecodeElement(&p, &se); err != nil {
			return nil, fmt.Errorf("decode position %d: %w", entry, err)
		}

		if p.DepCode == nil || p.DepJob == nil || p.Description == nil {
			return nil, fmt.Errorf("%w: position %d", ErrMalformedEntry, entry)
		}

		key := models.Key{DepCode: *p.DepCode, DepJob: *p.DepJob}
		if _, seen := snap[key]; seen {
			return nil, &DuplicateKeyError{Key: key}
		}

		snap[key] = models.Position{Key: key, Description: *p.Description}
	}

	if len(snap) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySnapshot, path)
	}

	return snap, nil
}
