package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional account emails
type Mailer interface {
	SendVerificationEmail(email, token string) error
	SendPasswordResetEmail(email, token string) error
}

type smtpMailer struct {
	dialer      *gomail.Dialer
	from        string
	frontendURL string
}

// NewMailer creates an SMTP-backed mailer
func NewMailer(host string, port int, user, password, from, frontendURL string) Mailer {
	return &smtpMailer{
		dialer:      gomail.NewDialer(host, port, user, password),
		from:        from,
		frontendURL: frontendURL,
	}
}

// SendVerificationEmail sends the email-verification link
func (m *smtpMailer) SendVerificationEmail(email, token string) error {
	verificationURL := fmt.Sprintf("%s/verify-email?token=%s", m.frontendURL, token)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Verify Your Email Address")

	body := fmt.Sprintf(`
		<h1>Welcome to Verify.me!</h1>
		<p>Thank you for registering. Please verify your email by clicking the link below:</p>
		<p><a href="%s">Verify Email</a></p>
		<p>This link will expire in 24 hours.</p>
		<p>If you did not register for Verify.me, please ignore this email.</p>
	`, verificationURL)

	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

// SendPasswordResetEmail sends the password-reset link
func (m *smtpMailer) SendPasswordResetEmail(email, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", m.frontendURL, token)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Reset Your Password")

	body := fmt.Sprintf(`
		<h1>Password Reset Request</h1>
		<p>You requested a password reset. Please click the link below to reset your password:</p>
		<p><a href="%s">Reset Password</a></p>
		<p>This link will expire in 24 hours.</p>
		<p>If you did not request a password reset, please ignore this email.</p>
	`, resetURL)

	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}
