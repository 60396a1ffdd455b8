package mailer

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// Counter is the increment-only slice of a metrics counter.
type Counter interface {
	Inc()
}

// Mailer sends HTML notifications through an authenticated SMTP account.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	sent   Counter
	failed Counter
}

// NewMailer builds a dialer for the account. The counters may be nil.
func NewMailer(host string, port int, user, pass string, sent, failed Counter) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
		sent:   sent,
		failed: failed,
	}
}

// Send dispatches one message and blocks until the SMTP exchange finishes.
func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", fmt.Sprintf("<div><h3>%s</h3><p>%s</p></div>", subject, body))

	if err := m.dialer.DialAndSend(msg); err != nil {
		if m.failed != nil {
			m.failed.Inc()
		}
		return fmt.Errorf("mailer: send to %s: %w", to, err)
	}
	if m.sent != nil {
		m.sent.Inc()
	}
	return nil
}

// SendAsync fires the message from a goroutine. Failure only reaches the
// operator log and the failure counter; the caller's response has usually
// been written already.
func (m *Mailer) SendAsync(to, subject, body string) {
	go func() {
		if err := m.Send(to, subject, body); err != nil {
			log.Printf("mail dispatch failed: %v", err)
		} else {
			log.Printf("mail sent to %s: %s", to, subject)
		}
	}()
}
