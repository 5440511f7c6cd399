package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sportnest/sportscomplex-backend/internal/config"
	gomail "github.com/wneessen/go-mail"
)

// Mailer sends transactional mail over SMTP. Sends are fire-and-forget from
// the caller's point of view: failures are logged, never surfaced to the
// request that triggered them.
type Mailer struct {
	cfg *config.Config
	log zerolog.Logger
}

// New creates a Mailer from the SMTP settings in cfg.
func New(cfg *config.Config, log zerolog.Logger) *Mailer {
	return &Mailer{
		cfg: cfg,
		log: log.With().Str("component", "mailer").Logger(),
	}
}

func (m *Mailer) send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(m.cfg.MailFromName, m.cfg.MailFrom); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	client, err := gomail.NewClient(m.cfg.SMTPHost,
		gomail.WithPort(m.cfg.SMTPPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.SMTPUser),
		gomail.WithPassword(m.cfg.SMTPPassword),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// SendVerification dispatches the account-verification mail in the background.
func (m *Mailer) SendVerification(to, userID, code string) {
	link := fmt.Sprintf("%s/api/v1/users/verify/%s/%s", m.cfg.PublicBaseURL, userID, code)
	body := fmt.Sprintf(
		"Confirm your SportsComplex account.\n\nVerification code: %s\n%s\n", code, link)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := m.send(ctx, to, "SportsComplex account verification", body); err != nil {
			m.log.Error().Err(err).Str("to", to).Msg("verification mail failed")
		}
	}()
}

// SendPasswordReset dispatches the password-reset mail in the background.
func (m *Mailer) SendPasswordReset(to, userID, code string) {
	body := fmt.Sprintf(
		"Password reset code: %s\nAccount id: %s\n", code, userID)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := m.send(ctx, to, "Reset your password", body); err != nil {
			m.log.Error().Err(err).Str("to", to).Msg("password reset mail failed")
		}
	}()
}
