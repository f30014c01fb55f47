package finbook

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all stores. Callers match them with
// errors.Is; stores wrap them with context via fmt.Errorf and %w.
var (
	// ErrNotFound reports that a referenced record does not exist or is
	// not owned by the given scope. No mutation has taken place.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials reports a failed authentication. It is
	// deliberately the same for an unknown user and a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrLastProfile reports a refused deletion of a user's only profile.
	ErrLastProfile = errors.New("cannot delete the last profile")
)

// ValidationError reports a malformed or out-of-range field. The
// operation that produced it has been aborted with no partial write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// StorageError wraps a filesystem failure during a read or write. For
// multi-row rewrites the temp-file pattern guarantees the previous
// committed file survives any failure before the final rename.
type StorageError struct {
	Path string
	Op   string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op, path string, err error) error {
	return &StorageError{Path: path, Op: op, Err: err}
}
