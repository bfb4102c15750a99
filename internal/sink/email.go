package sink

import (
	"context"
	"crypto/rand"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/toyoo1004/stock-scanner/internal/report"
	"github.com/toyoo1004/stock-scanner/internal/scanner"
)

// EmailSink sends the report as the message body with a text-file copy
// attached, over authenticated SMTP.
type EmailSink struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
	UseTLS   bool
}

func NewEmailSink(host string, port int, username, password, from string, to []string, useTLS bool) *EmailSink {
	if port == 0 {
		port = 587
	}
	return &EmailSink{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
		From:     from,
		To:       to,
		UseTLS:   useTLS,
	}
}

func (e *EmailSink) Name() string { return "email" }

func (e *EmailSink) Deliver(_ context.Context, rep *scanner.ScanReport) error {
	if e.Host == "" || e.Username == "" || e.Password == "" || e.From == "" || len(e.To) == 0 {
		return fmt.Errorf("smtp credentials not configured")
	}

	body := report.Format(rep)
	attachName := fmt.Sprintf("scan_%s.txt", rep.StartedAt.Format("20060102"))
	msg := e.buildMessage(report.Subject(rep), body, attachName, []byte(body))

	addr := fmt.Sprintf("%s:%d", e.Host, e.Port)
	auth := smtp.PlainAuth("", e.Username, e.Password, e.Host)
	if e.UseTLS {
		return e.sendWithTLS(addr, auth, msg)
	}
	return smtp.SendMail(addr, auth, e.From, e.To, []byte(msg))
}

// buildMessage assembles a multipart/mixed MIME message: plain-text body
// plus the report file attachment. Base64 keeps every line under the
// RFC 5322 length limit.
func (e *EmailSink) buildMessage(subject, textBody, attachName string, attachment []byte) string {
	boundary := generateBoundary()

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", e.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(e.To, ", ")))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=\"%s\"\r\n", boundary))
	msg.WriteString("\r\n")

	msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("Content-Transfer-Encoding: base64\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(encodeBase64WithLineBreaks([]byte(textBody)))
	msg.WriteString("\r\n")

	msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	msg.WriteString(fmt.Sprintf("Content-Type: text/plain; charset=\"UTF-8\"; name=\"%s\"\r\n", attachName))
	msg.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=\"%s\"\r\n", attachName))
	msg.WriteString("Content-Transfer-Encoding: base64\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(encodeBase64WithLineBreaks(attachment))
	msg.WriteString("\r\n")

	msg.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	return msg.String()
}

// sendWithTLS performs the SMTP conversation over STARTTLS.
func (e *EmailSink) sendWithTLS(addr string, auth smtp.Auth, msg string) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: e.Host}); err != nil {
		return fmt.Errorf("starttls: %w", err)
	}
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := client.Mail(e.From); err != nil {
		return fmt.Errorf("smtp mail: %w", err)
	}
	for _, rcpt := range e.To {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("smtp rcpt %s: %w", rcpt, err)
		}
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		w.Close()
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}
	return client.Quit()
}

func generateBoundary() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "scan-report-boundary"
	}
	return fmt.Sprintf("boundary-%x", buf)
}

// encodeBase64WithLineBreaks wraps base64 output at 76 characters.
func encodeBase64WithLineBreaks(data []byte) string {
	encoded := base64.StdEncoding.EncodeToString(data)
	var b strings.Builder
	for len(encoded) > 76 {
		b.WriteString(encoded[:76])
		b.WriteString("\r\n")
		encoded = encoded[76:]
	}
	b.WriteString(encoded)
	return b.String()
}
