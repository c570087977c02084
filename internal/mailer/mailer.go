package mailer

import (
	gomail "gopkg.in/gomail.v2"
)

// Mailer delivers a notification, best-effort. Failures are for the caller
// to log and swallow, never to surface as a request failure.
type Mailer interface {
	Send(subject, body string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewSMTP(host string, port int, username, password, from, to string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		to:     to,
	}
}

func (m *SMTPMailer) Send(subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}
