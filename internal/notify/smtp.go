package notify

import (
	"context"
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// SMTP sends through an outbound relay with a service-account credential.
type SMTP struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTP(host string, port int, user, pass, from string) *SMTP {
	return &SMTP{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

func (s *SMTP) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	log.Printf("[notify] email sent to %s", to)
	return nil
}
