// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"exam-prep-be/internal/entity"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	Send(toEmail, subject, htmlBody string) error
	SendTemplate(toEmail string, tmpl *entity.EmailTemplate, data map[string]string) error
	ResetLink(token string) string
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) Send(toEmail, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send %q to %s: %v\n", subject, toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] %q sent to %s\n", subject, toEmail)
	return nil
}

// SendTemplate renders a stored template with {{.var}} placeholders and
// sends the result. Subject and body share the same data map.
func (s *emailService) SendTemplate(toEmail string, tmpl *entity.EmailTemplate, data map[string]string) error {
	subject, err := renderString("subject", tmpl.Subject, data)
	if err != nil {
		return err
	}
	body, err := renderString("body", tmpl.Body, data)
	if err != nil {
		return err
	}
	return s.Send(toEmail, subject, body)
}

func (s *emailService) ResetLink(token string) string {
	return fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)
}

func renderString(name, text string, data map[string]string) (string, error) {
	t, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render email template %s: %w", name, err)
	}
	return buf.String(), nil
}
