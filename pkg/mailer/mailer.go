package mailer

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"
)

type Mailer interface {
	SendHTML(to, subject, htmlTpl string, data any) error
	Ping() error
}

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // "Name <no-reply@example.com>" or a bare address
	UseTLS   bool   // true = SMTPS / explicit TLS; false = plain TCP without AUTH
}

type mailer struct {
	cfg *Config
}

func New(cfg *Config) Mailer {
	return &mailer{cfg: cfg}
}

func (m *mailer) SendHTML(to, subject, htmlTpl string, data any) error {
	t, err := template.New("email").Parse(htmlTpl)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("exec template: %w", err)
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	from := envelopeAddress(m.cfg.From)

	if m.cfg.UseTLS {
		return m.sendTLS(from, to, msg.Bytes())
	}

	// PlainAuth refuses unencrypted connections, so no AUTH without TLS.
	return smtp.SendMail(m.addr(), nil, from, []string{to}, msg.Bytes())
}

// Ping dials the SMTP server and issues a NOOP so misconfiguration
// surfaces at startup instead of on the first submission.
func (m *mailer) Ping() error {
	c, err := m.connect()
	if err != nil {
		return err
	}

	defer func() {
		_ = c.Close()
	}()

	if err := c.Noop(); err != nil {
		return fmt.Errorf("noop: %w", err)
	}

	return c.Quit()
}

func (m *mailer) sendTLS(from, to string, msg []byte) error {
	c, err := m.connect()
	if err != nil {
		return err
	}

	defer func() {
		_ = c.Close()
	}()

	if m.cfg.Username != "" && m.cfg.Password != "" {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		if err := c.Auth(auth); err != nil {
			return fmt.Errorf("auth: %w", err)
		}
	}

	if err := c.Mail(from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}

	if err := c.Rcpt(to); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}

	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	return w.Close()
}

func (m *mailer) connect() (*smtp.Client, error) {
	if !m.cfg.UseTLS {
		c, err := smtp.Dial(m.addr())
		if err != nil {
			return nil, fmt.Errorf("dial: %w", err)
		}
		return c, nil
	}

	conn, err := tls.Dial("tcp", m.addr(), &tls.Config{ServerName: m.cfg.Host})
	if err != nil {
		return nil, fmt.Errorf("dial tls: %w", err)
	}

	c, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return nil, fmt.Errorf("new client: %w", err)
	}

	return c, nil
}

func (m *mailer) addr() string {
	return fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
}

// envelopeAddress extracts the bare address from a "Name <addr>" From header.
func envelopeAddress(from string) string {
	start, end := -1, -1
	for i, r := range from {
		switch r {
		case '<':
			start = i
		case '>':
			end = i
		}
	}

	if start >= 0 && end > start {
		return from[start+1 : end]
	}

	return from
}
