package notification

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// ConfigFromEnv returns the SMTP config and whether mailing is enabled at
// all. An unset SMTP_HOST disables delivery; callers log instead.
func ConfigFromEnv() (Config, bool) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return Config{}, false
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}

	return Config{
		Host:     host,
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}, true
}

//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock
type Mailer interface {
	Send(to, subject, body string) error
}

// smtpMailer delivers plain-text mail over STARTTLS (or implicit TLS on 465).
type smtpMailer struct {
	cfg Config
}

func NewSMTPMailer(cfg Config) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) Send(to, subject, body string) error {
	cfg := m.cfg
	message := buildMessage(cfg.From, to, subject, body)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	fromAddr := parseAddress(cfg.From)
	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)

	client, err := smtpClient(addr, cfg.Host, cfg.Port)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(fromAddr); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	writer, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := writer.Write([]byte(message)); err != nil {
		_ = writer.Close()
		return err
	}
	return writer.Close()
}

// logMailer is the fallback when SMTP is not configured.
type logMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) Mailer {
	return &logMailer{logger: logger.Named("notification.log_mailer")}
}

func (m *logMailer) Send(to, subject, body string) error {
	m.logger.Info("mail delivery skipped (SMTP not configured)",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}

func smtpClient(addr string, host string, port int) (*smtp.Client, error) {
	if port == 465 {
		conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
		if err != nil {
			return nil, err
		}
		return smtp.NewClient(conn, host)
	}

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return nil, err
	}
	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
			_ = client.Close()
			return nil, err
		}
	}
	return client, nil
}

func buildMessage(from string, to string, subject string, body string) string {
	headers := []string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}
	return strings.Join(headers, "\r\n")
}

func parseAddress(from string) string {
	start := strings.Index(from, "<")
	end := strings.Index(from, ">")
	if start >= 0 && end > start {
		return strings.TrimSpace(from[start+1 : end])
	}
	return strings.TrimSpace(from)
}
