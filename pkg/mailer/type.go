package mailer

import "gatherup-api/pkg/log"

// Config holds SMTP relay configuration.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Message is one outgoing email.
type Message struct {
	To       []string
	Subject  string
	HTMLBody string
}

type implMailer struct {
	l   log.Logger
	cfg Config
}
