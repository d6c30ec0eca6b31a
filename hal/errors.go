package hal

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a lookup for a name with no registered handle.
	// Returned errors carry the concrete *NotFoundError; match with errors.Is.
	ErrNotFound = errors.New("hal: resource not found")

	// ErrConflict indicates a resource claimed by more than one requester.
	ErrConflict = errors.New("hal: conflicting resource claim")
)

// NotFoundError reports which resource was requested and which registry the
// lookup ran against.
type NotFoundError struct {
	Resource string // the requested name
	Registry string // the registry's diagnostic label
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("hal: could not find resource %q in %q", e.Resource, e.Registry)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ConflictError reports a resource claimed by two different requesters.
type ConflictError struct {
	Resource string // the doubly claimed resource
	First    string // requester that claimed it first
	Second   string // requester whose claim collided
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("hal: resource %q claimed by both %q and %q", e.Resource, e.First, e.Second)
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }
