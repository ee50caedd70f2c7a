package main

import "fmt"

// ExitError signals a non-zero exit code without forcing os.Exit in RunE
// handlers. Execute unwraps it and exits with the carried code, which lets
// validate report FAIL through the exit status without treating it as a
// command failure.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
