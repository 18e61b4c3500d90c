package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrStale is returned when the guarded status update matched no
	// row, meaning another transition won the race.
	ErrStale = errors.New("stale status")
)
