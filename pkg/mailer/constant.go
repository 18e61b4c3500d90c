package mailer

import "time"

const (
	// DefaultTimeout bounds one SMTP delivery attempt.
	DefaultTimeout = 10 * time.Second
	// MaxSubjectLength is the maximum subject length before truncation.
	MaxSubjectLength = 255
)
