package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrResolution matches every *ResolutionError.
	ErrResolution = errors.New("descriptor resolution failed")
	// ErrNotFound is returned by Pool lookups for names that are not registered.
	ErrNotFound = errors.New("not found")
)

// ResolutionError reports a dependency or type reference that could not be
// resolved while building a file.
type ResolutionError struct {
	// File is the missing dependency. Empty when a type name failed to
	// resolve.
	File string
	// Type is the unresolved type name and From the element referencing it.
	Type string
	From string
}

func (e *ResolutionError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("descriptor for file %q not found", e.File)
	}
	return fmt.Sprintf("unable to resolve type name %q referenced from %s", e.Type, e.From)
}

func (e *ResolutionError) Is(target error) bool { return target == ErrResolution }
