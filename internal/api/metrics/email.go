package metrics

import (
	"context"

	"github.com/heathcliff2012/MERN-ConnectLive/internal/core/ports"
)

// InstrumentedEmailSender wraps an EmailSender and records every dispatch in
// EmailsSentTotal. Errors pass through unchanged so callers keep their
// best-effort handling.
type InstrumentedEmailSender struct {
	next ports.EmailSender
}

func InstrumentEmailSender(next ports.EmailSender) *InstrumentedEmailSender {
	return &InstrumentedEmailSender{next: next}
}

func (s *InstrumentedEmailSender) SendVerificationEmail(ctx context.Context, toEmail, fullName, code string) error {
	err := s.next.SendVerificationEmail(ctx, toEmail, fullName, code)
	EmailsSentTotal.WithLabelValues("verification", resultLabel(err)).Inc()
	return err
}

func (s *InstrumentedEmailSender) SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetURL string) error {
	err := s.next.SendPasswordResetEmail(ctx, toEmail, fullName, resetURL)
	EmailsSentTotal.WithLabelValues("password_reset", resultLabel(err)).Inc()
	return err
}

func (s *InstrumentedEmailSender) SendPasswordResetSuccessEmail(ctx context.Context, toEmail, fullName string) error {
	err := s.next.SendPasswordResetSuccessEmail(ctx, toEmail, fullName)
	EmailsSentTotal.WithLabelValues("reset_success", resultLabel(err)).Inc()
	return err
}

func resultLabel(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
