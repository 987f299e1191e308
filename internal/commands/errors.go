package commands

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by NotFoundError.
	ErrNotFound = errors.New("path not found")
	// ErrNotDirectory is matched by NotDirectoryError.
	ErrNotDirectory = errors.New("path is not a directory")
)

const (
	errorPathMissingFormat   = "path '%s' does not exist"
	errorNotDirectoryFormat  = "path '%s' is not a directory"
	errorAbsolutePathFormat  = "getting absolute path for %s: %w"
	errorStatRootFormat      = "stat failed for '%s': %w"
	errorNegativeDepthFormat = "max depth must not be negative, got %d"
	errorExclusionFormat     = "compiling exclusion patterns: %w"
)

// NotFoundError reports a traversal root that does not exist.
type NotFoundError struct {
	Path string
}

func (notFound *NotFoundError) Error() string {
	return fmt.Sprintf(errorPathMissingFormat, notFound.Path)
}

// Is lets errors.Is match ErrNotFound.
func (notFound *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NotDirectoryError reports a traversal root that is a file.
type NotDirectoryError struct {
	Path string
}

func (notDirectory *NotDirectoryError) Error() string {
	return fmt.Sprintf(errorNotDirectoryFormat, notDirectory.Path)
}

// Is lets errors.Is match ErrNotDirectory.
func (notDirectory *NotDirectoryError) Is(target error) bool {
	return target == ErrNotDirectory
}
