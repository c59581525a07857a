// Package mail sends account emails over SMTP.
package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Config captures the SMTP settings and the public base URL used to
// build links.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	AppURL   string
}

// Mailer sends verification and password-reset emails.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	appURL string
}

func NewMailer(cfg Config) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		appURL: cfg.AppURL,
	}
}

func (m *Mailer) SendVerificationEmail(ctx context.Context, to, token string) error {
	link := fmt.Sprintf("%s/auth/verify-email/%s", m.appURL, token)
	body := `<h1>Welcome!</h1>
		<p>Please verify your email address by clicking the link below:</p>
		<a href="` + link + `">Verify Email</a>`
	return m.send(ctx, to, "Verify your email", body)
}

func (m *Mailer) SendPasswordResetEmail(ctx context.Context, to, token string) error {
	link := fmt.Sprintf("%s/reset-password.html?token=%s", m.appURL, token)
	body := `<p>You requested a password reset.</p>
		<p>Click this <a href="` + link + `">link</a> to reset your password.</p>
		<p>If you did not request this, please ignore this email.</p>`
	return m.send(ctx, to, "Password Reset Request", body)
}

// send delivers one message, bounded by the context deadline. gomail has
// no context support, so the dial-and-send runs in a goroutine and the
// context abandons it on expiry.
func (m *Mailer) send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("send mail to %s: %w", to, ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send mail to %s: %w", to, err)
		}
		return nil
	}
}
