package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

// Sender delivers one email payload. Implementations report whether they
// actually speak SMTP so the worker can short-circuit into preview mode.
type Sender interface {
	Configured() bool
	Send(ctx context.Context, payload entities.EmailPayload) error
}

// SMTPConfig holds the outbound mail relay settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Secure   bool
}

// SMTPSender delivers mail over a plain SMTP relay. Transient dial and
// submission failures are retried with exponential backoff before the job
// queue's own retry schedule takes over.
type SMTPSender struct {
	cfg    SMTPConfig
	logger *zap.Logger
}

// NewSMTPSender creates an SMTP sender. An incomplete config is allowed;
// the sender then reports itself unconfigured.
func NewSMTPSender(cfg SMTPConfig, logger *zap.Logger) *SMTPSender {
	return &SMTPSender{cfg: cfg, logger: logger}
}

var _ Sender = (*SMTPSender)(nil)

// Configured reports whether the relay settings are complete.
func (s *SMTPSender) Configured() bool {
	return s.cfg.Host != "" && s.cfg.Username != "" && s.cfg.Password != ""
}

// Send submits the payload to the relay.
func (s *SMTPSender) Send(ctx context.Context, payload entities.EmailPayload) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	msg := buildMessage(payload)

	submitFn := func() error {
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}
		if s.cfg.Secure {
			return s.sendTLS(addr, auth, payload, msg)
		}
		return smtp.SendMail(addr, auth, payload.FromEmail, payload.To, msg)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(submitFn, backoff.WithContext(bo, ctx)); err != nil {
		if s.logger != nil {
			s.logger.Error("❌ SMTP delivery failed after retries",
				zap.String("host", s.cfg.Host),
				zap.Strings("to", payload.To),
				zap.Error(err),
			)
		}
		return fmt.Errorf("smtp delivery failed: %w", err)
	}
	return nil
}

// sendTLS dials with implicit TLS for relays that refuse STARTTLS upgrades.
func (s *SMTPSender) sendTLS(addr string, auth smtp.Auth, payload entities.EmailPayload, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.cfg.Host})
	if err != nil {
		return fmt.Errorf("failed to dial smtp relay: %w", err)
	}
	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open smtp session: %w", err)
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth failed: %w", err)
	}
	if err := client.Mail(payload.FromEmail); err != nil {
		return err
	}
	for _, rcpt := range payload.To {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func buildMessage(payload entities.EmailPayload) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", payload.FromEmail)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(payload.To, ","))
	fmt.Fprintf(&b, "Subject: %s\r\n", payload.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(payload.Text)
	return []byte(b.String())
}
