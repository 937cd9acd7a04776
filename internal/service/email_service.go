package service

import (
	"fmt"
	"net/smtp"
	"strings"

	"decora/internal/config"
)

// smtpEmailSender sends HTML mail over plain SMTP.
type smtpEmailSender struct {
	cfg *config.Config
}

// NewEmailSender creates an SMTP-backed EmailSender.
func NewEmailSender(cfg *config.Config) EmailSender {
	return &smtpEmailSender{cfg: cfg}
}

func (s *smtpEmailSender) SendPasswordReset(to, resetURL string) error {
	subject := "Reset your Decora Studio password"
	body := fmt.Sprintf(`
	<html>
	<body>
		<h2>Password Reset</h2>
		<p>We received a request to reset the password for your account.</p>
		<p><a href="%s">Click here to choose a new password</a></p>
		<p>The link is valid for a short time and can be used only once.</p>
		<p>If you didn't request this, you can safely ignore this email.</p>
	</body>
	</html>
	`, resetURL)

	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)

	headers := map[string]string{
		"From":         s.cfg.EmailFrom,
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": `text/html; charset="utf-8"`,
	}

	var message strings.Builder
	for k, v := range headers {
		fmt.Fprintf(&message, "%s: %s\r\n", k, v)
	}
	message.WriteString("\r\n" + body)

	return smtp.SendMail(
		s.cfg.SMTPHost+":"+s.cfg.SMTPPort,
		auth,
		s.cfg.EmailFrom,
		[]string{to},
		[]byte(message.String()),
	)
}
