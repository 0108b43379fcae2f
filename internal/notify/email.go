// Package notify delivers the check report by email, for running the scan
// from CI or a nightly job.
package notify

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"go.uber.org/zap"

	"github.com/tos-network/logcheck/internal/config"
	"github.com/tos-network/logcheck/internal/report"
)

// Service handles email notifications
type Service struct {
	config config.EmailConfig
	logger *zap.SugaredLogger
}

// NewService creates a new notification Service
func NewService(cfg config.EmailConfig, logger *zap.SugaredLogger) *Service {
	return &Service{config: cfg, logger: logger}
}

// SendReport renders the report as Markdown and sends it.
func (s *Service) SendReport(ctx context.Context, rpt *report.Report) error {
	var body bytes.Buffer
	if err := report.New(report.FormatMarkdown).Render(&body, rpt); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	return s.send(ctx, s.buildSubject(rpt), body.String())
}

func (s *Service) buildSubject(rpt *report.Report) string {
	date := rpt.Date.Format("Jan 2")

	if !rpt.HasFindings() {
		return fmt.Sprintf("[logcheck] %s - ✅ All logs guarded", date)
	}

	total := rpt.Summary.Total
	hot := rpt.Summary.HotPath
	if hot > 0 {
		return fmt.Sprintf("[logcheck] %s - ⚠️ %d unguarded logs (%d hot path)", date, total, hot)
	}
	return fmt.Sprintf("[logcheck] %s - %d unguarded logs", date, total)
}

func (s *Service) send(ctx context.Context, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)
	message := s.buildMessage(subject, body)

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := s.sendWithTimeout(addr, message, 30*time.Second)
		if err == nil {
			return nil
		}

		lastErr = err
		s.logger.Warnf("email attempt %d failed: %v", attempt, err)

		if attempt < 3 {
			time.Sleep(time.Duration(attempt*attempt) * time.Second)
		}
	}

	return fmt.Errorf("failed after 3 attempts: %w", lastErr)
}

func (s *Service) buildMessage(subject, body string) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("From: %s <%s>\r\n", s.config.FromName, s.config.FromAddress))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", s.config.ToAddress))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().Format(time.RFC1123Z)))
	buf.WriteString(fmt.Sprintf("Message-ID: <%d@%s>\r\n", time.Now().UnixNano(), s.config.SMTPHost))
	buf.WriteString("\r\n")
	buf.WriteString(body)

	return buf.Bytes()
}

func (s *Service) sendWithTimeout(addr string, message []byte, timeout time.Duration) error {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return fmt.Errorf("connecting to SMTP server: %w", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(timeout))

	client, err := smtp.NewClient(conn, s.config.SMTPHost)
	if err != nil {
		return fmt.Errorf("creating SMTP client: %w", err)
	}
	defer client.Quit()

	// Start TLS if port is 587
	if s.config.SMTPPort == 587 {
		tlsConfig := &tls.Config{ServerName: s.config.SMTPHost}
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("starting TLS: %w", err)
		}
	}

	if s.config.SMTPUser != "" {
		auth := smtp.PlainAuth("", s.config.SMTPUser, s.config.SMTPPassword, s.config.SMTPHost)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("authenticating: %w", err)
		}
	}

	if err := client.Mail(s.config.FromAddress); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := client.Rcpt(s.config.ToAddress); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("opening data writer: %w", err)
	}
	if _, err := w.Write(message); err != nil {
		return fmt.Errorf("writing message: %w", err)
	}
	return w.Close()
}
