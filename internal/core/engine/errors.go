package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceNotFound indicates a mesh/material asset could not be located.
	ErrResourceNotFound = errors.New("engine: resource not found")
	// ErrEmptyBuffer indicates a buffer was requested with no contents.
	ErrEmptyBuffer = errors.New("engine: empty buffer contents")
)

// ResourceError wraps a resource-loading failure with the path that failed.
// Resource errors are fatal at application start: there is no partial-entity
// fallback, the caller is expected to abort with a diagnostic.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("engine: loading resource %q: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// NewResourceError builds a ResourceError around a cause. A nil cause is
// normalized to ErrResourceNotFound.
func NewResourceError(path string, cause error) *ResourceError {
	if cause == nil {
		cause = ErrResourceNotFound
	}
	return &ResourceError{Path: path, Err: cause}
}
