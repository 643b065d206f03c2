package nativemenu

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrIndexOutOfRange is returned when selecting or removing a position
	// that does not exist.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotInitialized is returned by Run when Init has not succeeded.
	ErrNotInitialized = errors.New("nativemenu is not initialized")
)

// InfrastructureError represents a toolkit-level failure (SDL could not
// start, the font is missing, a sprite failed to load). Widget operations
// never return it.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "sprite")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("nativemenu: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("nativemenu: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
