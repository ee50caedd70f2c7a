package docmend

import (
	"errors"
	"fmt"
)

// PackageError represents an error binding or scanning a package directory
type PackageError struct {
	Root  string
	Cause error
}

func (e *PackageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("package error at '%s': %v", e.Root, e.Cause)
	}
	return fmt.Sprintf("package error at '%s'", e.Root)
}

func (e *PackageError) Unwrap() error {
	return e.Cause
}

// NewPackageError creates a new package error
func NewPackageError(root string, cause error) error {
	return &PackageError{
		Root:  root,
		Cause: cause,
	}
}

// PartError represents an error during a read, parse or write of one part
type PartError struct {
	Op    string
	Part  string
	Cause error
}

func (e *PartError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("part error during %s of '%s': %v", e.Op, e.Part, e.Cause)
	}
	return fmt.Sprintf("part error during %s of '%s'", e.Op, e.Part)
}

func (e *PartError) Unwrap() error {
	return e.Cause
}

// NewPartError creates a new part error
func NewPartError(op, part string, cause error) error {
	return &PartError{
		Op:    op,
		Part:  part,
		Cause: cause,
	}
}

// IsPackageError checks if an error is a package error
func IsPackageError(err error) bool {
	var pe *PackageError
	return errors.As(err, &pe)
}

// IsPartError checks if an error is a part error
func IsPartError(err error) bool {
	var pe *PartError
	return errors.As(err, &pe)
}
