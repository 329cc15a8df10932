package email

import (
	"fmt"

	"schemecheck_backend/internal/config"

	"gopkg.in/gomail.v2"
)

type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.Email.FromEmail, p.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendWelcome(to, name string) error {
	body := fmt.Sprintf(
		"<p>Namaste %s,</p><p>Your account has been created. You can now check your eligibility for government welfare schemes, bookmark them and track your applications.</p>",
		name,
	)
	return p.send(to, "Welcome to Scheme Sahayak", body)
}

func (p *SMTPProvider) SendStatusUpdate(to, name, schemeName, status string) error {
	body := fmt.Sprintf(
		"<p>Namaste %s,</p><p>The status of your application for <b>%s</b> is now <b>%s</b>.</p>",
		name, schemeName, status,
	)
	return p.send(to, fmt.Sprintf("Application update: %s", schemeName), body)
}
