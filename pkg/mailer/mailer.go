package mailer

import (
	"fmt"
	"io"

	"gopkg.in/gomail.v2"
)

type Config struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// SMTPMailer sends transactional mail over SMTP. Each send dials a
// fresh connection; dispatch volume is low and the worker retries
// through the queue anyway.
type SMTPMailer struct {
	cfg    Config
	dialer *gomail.Dialer
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (m *SMTPMailer) SendTicketEmail(to, buyerName, eventName string, finalAmount int64, artifact []byte) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("Your ticket for %s", eventName))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour payment of %d for %s has been confirmed.\nYour ticket is attached.\n\nSee you there!",
		buyerName, finalAmount, eventName))

	if len(artifact) > 0 {
		msg.Attach("ticket.pdf", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(artifact)
			return err
		}))
	}

	return m.dialer.DialAndSend(msg)
}

func (m *SMTPMailer) SendEmail(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
