package shm

import "errors"

var (
	// ErrBadMagic indicates a file that is not a slot store.
	ErrBadMagic = errors.New("shm: bad magic")

	// ErrBadVersion indicates a slot store written by an incompatible
	// format version.
	ErrBadVersion = errors.New("shm: unsupported format version")

	// ErrTruncated indicates a slot store shorter than its header claims.
	ErrTruncated = errors.New("shm: file truncated")

	// ErrClosed indicates use of a store after Close.
	ErrClosed = errors.New("shm: store is closed")
)
