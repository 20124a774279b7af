package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Message is a rendered customer notification ready for delivery
type Message struct {
	ID       string
	Kind     string
	To       string
	Subject  string
	HTMLBody string
	TextBody string
	// Fields are attached to delivery log lines
	Fields logrus.Fields
}

// Mailer delivers rendered notifications
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// SMTPConfig holds SMTP configuration
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// LogMailer simulates delivery by writing the notification to the log
type LogMailer struct{}

// NewLogMailer creates a mailer that only logs
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// Send logs the message instead of delivering it
func (m *LogMailer) Send(ctx context.Context, msg *Message) error {
	fields := logrus.Fields{
		"simulated":  true,
		"message_id": msg.ID,
		"kind":       msg.Kind,
		"to":         msg.To,
		"subject":    msg.Subject,
	}
	for k, v := range msg.Fields {
		fields[k] = v
	}

	logrus.WithContext(ctx).WithFields(fields).Info("Notification email sent (simulated)")
	return nil
}

// SMTPMailer delivers notifications through an SMTP relay
type SMTPMailer struct {
	config *SMTPConfig
	dialer *gomail.Dialer
}

// NewSMTPMailer creates a mailer for the given relay
func NewSMTPMailer(config *SMTPConfig) (*SMTPMailer, error) {
	if config == nil || config.Host == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if config.FromEmail == "" {
		return nil, fmt.Errorf("SMTP from address is required")
	}

	return &SMTPMailer{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}, nil
}

// Send delivers the message over SMTP
func (m *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", m.config.FromEmail, m.config.FromName)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetHeader("X-Notification-ID", msg.ID)
	gm.SetBody("text/plain", msg.TextBody)
	if msg.HTMLBody != "" {
		gm.AddAlternative("text/html", msg.HTMLBody)
	}

	if err := m.dialer.DialAndSend(gm); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	logrus.WithContext(ctx).WithFields(logrus.Fields{
		"message_id": msg.ID,
		"kind":       msg.Kind,
		"to":         msg.To,
		"smtp_host":  m.config.Host,
	}).Info("Notification email sent")

	return nil
}

// NewMailer returns an SMTP mailer when a relay is configured, otherwise a LogMailer
func NewMailer(config *SMTPConfig) (Mailer, error) {
	if config == nil || config.Host == "" {
		return NewLogMailer(), nil
	}
	return NewSMTPMailer(config)
}
