package email

import (
	"fmt"

	"jobdesk_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider реализует Provider поверх gomail
type SMTPProvider struct {
	cfg *config.Config
}

// NewSMTPProvider создает новый SMTP провайдер
func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

// Send отправляет email сообщение
func (p *SMTPProvider) Send(email *Email) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.cfg.Email.FromEmail, p.cfg.Email.FromName))
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.Body)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

// SendVerification отправляет письмо верификации аккаунта
func (p *SMTPProvider) SendVerification(to string, token string) error {
	body := fmt.Sprintf(verificationTemplate, token)
	return p.Send(&Email{
		To:      []string{to},
		Subject: "Confirm your jobdesk account",
		Body:    body,
	})
}
