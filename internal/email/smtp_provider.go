package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider implements Provider over gomail.
type SMTPProvider struct {
	config *SMTPConfig
	dialer *gomail.Dialer
}

// NewSMTPProvider creates an SMTP-backed email provider.
func NewSMTPProvider(config *SMTPConfig) *SMTPProvider {
	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

// Send sends a prepared email message synchronously.
func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	from := email.From
	if from == "" {
		from = p.config.FromEmail
	}
	m.SetAddressHeader("From", from, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendRegistrationOTP delivers the one-time registration code.
func (p *SMTPProvider) SendRegistrationOTP(to, name, otp string) error {
	html, err := Render("otp", OTPData{Name: name, OTP: otp})
	if err != nil {
		return err
	}
	return p.Send(&Email{
		To:       []string{to},
		Subject:  "Registration OTP",
		HTMLBody: html,
	})
}

// SendRegistrationSuccess delivers the welcome message with the bonus amount.
func (p *SMTPProvider) SendRegistrationSuccess(to, name string, bonusPoints int, isStudent bool) error {
	html, err := Render("welcome", WelcomeData{Name: name, BonusPoints: bonusPoints, IsStudent: isStudent})
	if err != nil {
		return err
	}
	return p.Send(&Email{
		To:       []string{to},
		Subject:  "Registration Successful",
		HTMLBody: html,
	})
}

// SendJobPostedBroadcast announces a new posting to the static recipient list.
func (p *SMTPProvider) SendJobPostedBroadcast(to []string, data JobPostedData) error {
	if len(to) == 0 {
		return nil
	}
	html, err := Render("job_posted", data)
	if err != nil {
		return err
	}
	return p.Send(&Email{
		To:       to,
		Subject:  "New Job Opening!",
		HTMLBody: html,
	})
}

// SendApplicationNotice notifies the owning company account about an applicant.
func (p *SMTPProvider) SendApplicationNotice(to string, data ApplicationData) error {
	html, err := Render("application", data)
	if err != nil {
		return err
	}
	return p.Send(&Email{
		To:       []string{to},
		Subject:  "Job Application Notification",
		HTMLBody: html,
	})
}

// Validate checks the SMTP configuration.
func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}
	return nil
}

// Close releases provider resources. gomail dials per send, nothing to do.
func (p *SMTPProvider) Close() error {
	return nil
}
