package squad

import "errors"

var (
	ErrSquadNotFound     = errors.New("squad not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnknownStatus     = errors.New("unknown squad status")
	ErrPermissionDenied  = errors.New("permission denied")
)
