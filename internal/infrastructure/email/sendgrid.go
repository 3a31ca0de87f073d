package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const verificationTemplate = `
<p>Hi {fullName},</p>
<p>Welcome! Enter this code to verify your email address:</p>
<h2>{verificationCode}</h2>
<p>The code expires in one hour.</p>`

const passwordResetTemplate = `
<p>Hi {fullName},</p>
<p>We received a request to reset your password. Click the link below to choose a new one:</p>
<p><a href="{resetURL}">{resetURL}</a></p>
<p>The link expires in one hour. If you did not request this, you can ignore this email.</p>`

const passwordResetSuccessTemplate = `
<p>Hi {fullName},</p>
<p>Your password was changed successfully. If this wasn't you, reset your password immediately.</p>`

// Sender delivers transactional mail through SendGrid.
type Sender struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

func NewSender(apiKey, fromName, fromEmail string) *Sender {
	return &Sender{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (s *Sender) SendVerificationEmail(ctx context.Context, toEmail, fullName, code string) error {
	html := strings.NewReplacer("{fullName}", fullName, "{verificationCode}", code).
		Replace(verificationTemplate)
	return s.send(ctx, toEmail, fullName, "Verify Your Email", html)
}

func (s *Sender) SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetURL string) error {
	html := strings.NewReplacer("{fullName}", fullName, "{resetURL}", resetURL).
		Replace(passwordResetTemplate)
	return s.send(ctx, toEmail, fullName, "Password Reset Request", html)
}

func (s *Sender) SendPasswordResetSuccessEmail(ctx context.Context, toEmail, fullName string) error {
	html := strings.NewReplacer("{fullName}", fullName).Replace(passwordResetSuccessTemplate)
	return s.send(ctx, toEmail, fullName, "Password Reset Successful", html)
}

func (s *Sender) send(ctx context.Context, toEmail, toName, subject, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlContent)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
