package mail

import (
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/lysyi3m/arxiv-comb/app/cfg"
)

// SenderInterface defines the interface for digest delivery.
// Used by the send digest task and the API trigger endpoint.
type SenderInterface interface {
	Send(recipient, subject, htmlBody string) error
}

var _ SenderInterface = (*Sender)(nil)

// Sender delivers HTML mail over SMTP with PLAIN authentication.
type Sender struct {
	host     string
	port     string
	sender   string
	alias    string
	password string
}

func NewSender() *Sender {
	cfg := cfg.Get()

	return &Sender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		sender:   cfg.SMTPSender,
		alias:    cfg.SMTPAlias,
		password: cfg.SMTPPassword,
	}
}

func (s *Sender) Send(recipient, subject, htmlBody string) error {
	if s.host == "" || s.sender == "" {
		return fmt.Errorf("SMTP delivery is not configured")
	}

	from := s.sender
	if s.alias != "" {
		from = fmt.Sprintf("%s <%s>", s.alias, s.sender)
	}

	var msg strings.Builder
	msg.WriteString("From: " + from + "\r\n")
	msg.WriteString("To: " + recipient + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	var auth smtp.Auth
	if s.password != "" {
		auth = smtp.PlainAuth("", s.sender, s.password, s.host)
	}

	addr := net.JoinHostPort(s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.sender, []string{recipient}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", recipient, err)
	}

	return nil
}
