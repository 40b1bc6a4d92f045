package download

import (
	"errors"
	"fmt"
)

// DirectoryCreationError is returned when the output directory cannot be created
type DirectoryCreationError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *DirectoryCreationError) Error() string {
	return fmt.Sprintf("failed to create output directory %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error
func (e *DirectoryCreationError) Unwrap() error {
	return e.Err
}

// FetchError is returned when the fetch collaborator fails. The message is the
// collaborator's message, unmodified.
type FetchError struct {
	URL     string
	Backend string
	Err     error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Err == nil {
		return "fetch failed"
	}
	return e.Err.Error()
}

// Unwrap returns the collaborator error
func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsDirectoryCreation returns true if err is or wraps a DirectoryCreationError
func IsDirectoryCreation(err error) bool {
	var target *DirectoryCreationError
	return errors.As(err, &target)
}

// IsFetch returns true if err is or wraps a FetchError
func IsFetch(err error) bool {
	var target *FetchError
	return errors.As(err, &target)
}
