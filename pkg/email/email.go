package email

import (
	"bytes"
	"fmt"
	"go-jobnetwork-backend/config"
	"html/template"
	"net/smtp"
)

// EmailService sends transactional notifications via SMTP.
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// StatusEmailData holds the data for application status notifications.
type StatusEmailData struct {
	ApplicantName string
	PostTitle     string
	Status        string
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

// IsConfigured reports whether SMTP credentials are present.
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

var statusTemplate = template.Must(template.New("status").Parse(`
<html>
<body style="font-family: sans-serif;">
	<p>Hi {{.ApplicantName}},</p>
	<p>Your application for <strong>{{.PostTitle}}</strong> was marked
	<strong>{{.Status}}</strong>.</p>
	<p>Log in to see the details.</p>
</body>
</html>
`))

// SendStatusUpdate notifies an applicant that their application reached a
// new status. Best-effort; callers log failures and move on.
func (s *EmailService) SendStatusUpdate(to string, data StatusEmailData) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email service not configured")
	}

	var body bytes.Buffer
	if err := statusTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	msg := []byte("From: " + s.fromEmail + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: Application update: " + data.PostTitle + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" + body.String())

	addr := s.host + ":" + s.port
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	return smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg)
}
