package systemctl

import (
	"errors"
	"fmt"
)

// Common errors returned by systemctl operations
var (
	// ErrNotFound indicates the requested unit is not known to systemd
	ErrNotFound = errors.New("systemctl: unit not found")

	// ErrPermissionOrNotFound indicates systemctl exited with code 4,
	// which signals missing privileges or a missing unit; the two causes
	// are indistinguishable from the exit code alone
	ErrPermissionOrNotFound = errors.New("systemctl: missing privileges or unit not found")

	// ErrKilledBySignal indicates the systemctl process was terminated by
	// a signal before producing an exit code
	ErrKilledBySignal = errors.New("systemctl: process terminated by signal")

	// ErrMalformedDoc indicates a documentation descriptor that does not
	// have the scheme:payload shape
	ErrMalformedDoc = errors.New("systemctl: malformed doc descriptor")

	// ErrMalformedListing indicates a list-unit-files row with fewer
	// columns than the table format guarantees
	ErrMalformedListing = errors.New("systemctl: malformed unit-files listing row")

	// ErrUnitTypeDecode indicates a unit name whose type suffix is not a
	// recognized unit type
	ErrUnitTypeDecode = errors.New("systemctl: unit type decode")
)

// ExitCodeError represents an unrecognized non-zero systemctl exit code.
// Codes 0, 1, 3 and 4 have defined classifications; everything else is
// surfaced through this type so callers retain the code for diagnostics.
type ExitCodeError struct {
	// Code is the raw process exit code
	Code int
}

// Error returns a formatted error message
func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("systemctl: process exited with code %d", e.Code)
}

// UnitError represents an error from a systemctl operation on a unit
type UnitError struct {
	// Op is the operation that failed
	Op Operation
	// Unit is the unit name involved in the operation
	Unit string
	// Err is the underlying error
	Err error
}

// Error returns a formatted error message
func (e *UnitError) Error() string {
	return fmt.Sprintf("systemctl %s %q: %v", e.Op.String(), e.Unit, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *UnitError) Unwrap() error {
	return e.Err
}

// MultiError aggregates multiple errors from bulk operations
type MultiError struct {
	// Errors contains all accumulated errors
	Errors []error
}

// Error returns a summary of the accumulated errors
func (m *MultiError) Error() string {
	if len(m.Errors) == 0 {
		return "no errors"
	}
	if len(m.Errors) == 1 {
		return m.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors occurred", len(m.Errors))
}

// Add appends an error to the collection if it's not nil
func (m *MultiError) Add(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

// Err returns nil if no errors occurred, otherwise returns the MultiError itself
func (m *MultiError) Err() error {
	if len(m.Errors) == 0 {
		return nil
	}
	return m
}
