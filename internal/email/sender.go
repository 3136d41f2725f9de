package email

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"wanderlust/backend/internal/config"
)

// Message is a single outbound notification email. HTML carries the fully
// rendered body; ReplyTo is optional.
type Message struct {
	FromName string
	From     string
	To       string
	ReplyTo  string
	Subject  string
	HTML     string
}

// Raw assembles the complete wire-format message, headers included.
func (m Message) Raw() []byte {
	from := m.From
	if m.FromName != "" {
		from = fmt.Sprintf("%q <%s>", m.FromName, m.From)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", m.To))
	if m.ReplyTo != "" {
		sb.WriteString(fmt.Sprintf("Reply-To: %s\r\n", m.ReplyTo))
	}
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", m.Subject))
	sb.WriteString("Date: " + time.Now().Format(time.RFC1123Z) + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(m.HTML)
	sb.WriteString("\r\n")
	return []byte(sb.String())
}

// Sender defines the interface for sending emails.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender implements the Sender interface using Go's net/smtp package.
type SMTPSender struct {
	cfg  *config.Config
	auth smtp.Auth
	addr string
}

// NewSMTPSender creates a new SMTPSender.
// It returns Sender so we can easily swap implementations (e.g., for testing).
func NewSMTPSender(cfg *config.Config) Sender {
	if cfg.MailUser == "" { // No sender identity configured, use a logging sender
		log.Println("Mail credentials not configured, using logging email sender.")
		return &LoggingSender{}
	}

	auth := smtp.PlainAuth(
		"", // identity
		cfg.MailUser,
		cfg.MailPassword,
		cfg.MailHost,
	)
	addr := fmt.Sprintf("%s:%d", cfg.MailHost, cfg.MailPort)

	return &SMTPSender{
		cfg:  cfg,
		auth: auth,
		addr: addr,
	}
}

// Send sends an email using SMTP.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	err := smtp.SendMail(s.addr, s.auth, s.cfg.MailUser, []string{msg.To}, msg.Raw())
	if err != nil {
		log.Printf("Failed to send email via SMTP to %s: %v", msg.To, err)
		return fmt.Errorf("smtp error: %w", err)
	}
	log.Printf("Email sent successfully via SMTP to %s (Subject: %s)", msg.To, msg.Subject)
	return nil
}

// LoggingSender is a mock implementation that just logs email details.
// Useful for development or when mail credentials aren't configured.
type LoggingSender struct{}

// Send logs the email details instead of sending.
func (s *LoggingSender) Send(ctx context.Context, msg Message) error {
	log.Printf("--- Sending Email (Logged) ---")
	log.Printf("From: %s <%s>", msg.FromName, msg.From)
	log.Printf("To: %s", msg.To)
	if msg.ReplyTo != "" {
		log.Printf("Reply-To: %s", msg.ReplyTo)
	}
	log.Printf("Subject: %s", msg.Subject)
	log.Println("--- Body ---")
	log.Println(msg.HTML)
	log.Println("--- End Email ---")
	return nil
}
