package mailer

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"net/textproto"

	"flexin/internal/pkg/config"
	"flexin/internal/pkg/errs"

	"github.com/jordan-wright/email"
)

// Mailer sends transactional mail. Failures are the caller's to log; none of
// the flows treat mail as critical.
type Mailer interface {
	SendVerificationEmail(to, token string) error
	SendPasswordResetEmail(to, token string) error
}

func NewMailer(cfg config.SMTPConfig) Mailer {
	if cfg.Host == "" {
		slog.Info("SMTPホスト未設定のためメール送信を無効化します")
		return &noopMailer{}
	}
	return &smtpMailer{cfg: cfg}
}

type smtpMailer struct {
	cfg config.SMTPConfig
}

func (m *smtpMailer) SendVerificationEmail(to, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", m.cfg.BaseURL, token)
	body := fmt.Sprintf("以下のリンクからメールアドレスを確認してください。\n\n%s\n", link)
	return m.send(to, "メールアドレスの確認", body)
}

func (m *smtpMailer) SendPasswordResetEmail(to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", m.cfg.BaseURL, token)
	body := fmt.Sprintf("以下のリンクからパスワードを再設定してください。\n\n%s\n", link)
	return m.send(to, "パスワード再設定", body)
}

func (m *smtpMailer) send(to, subject, body string) error {
	e := &email.Email{
		From:    m.cfg.From,
		To:      []string{to},
		Subject: subject,
		Text:    []byte(body),
		Headers: textproto.MIMEHeader{},
	}

	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}
	if err := e.Send(addr, auth); err != nil {
		return errs.Wrap(err, "failed to send mail")
	}
	return nil
}

type noopMailer struct{}

func (m *noopMailer) SendVerificationEmail(to, token string) error {
	slog.Info("メール送信をスキップしました", "kind", "verification", "to", to)
	return nil
}

func (m *noopMailer) SendPasswordResetEmail(to, token string) error {
	slog.Info("メール送信をスキップしました", "kind", "password_reset", "to", to)
	return nil
}
