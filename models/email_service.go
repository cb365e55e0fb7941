package models

import (
	"fmt"
	"os"
	"strconv"

	"furnish-shop/config"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	to     string
}

// NewEmailService builds the notification mailer from SMTP_* env vars.
// Returns an error when SMTP is not configured; callers treat the mailer as
// optional.
func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	to := config.AppConfig.NotifyEmail
	if to == "" {
		to = config.AppConfig.AdminEmail
	}

	return &EmailService{dialer: gomail.NewDialer(smtpHost, port, smtpUser, smtpPass), to: to}, nil
}

func (s *EmailService) send(subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", s.to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}

func (s *EmailService) SendEnquiryNotification(e Enquiry) error {
	body := fmt.Sprintf(`
<p>New enquiry received.</p>
<ul>
  <li><strong>Name:</strong> %s</li>
  <li><strong>Email:</strong> %s</li>
  <li><strong>Phone:</strong> %s</li>
  <li><strong>Message:</strong> %s</li>
</ul>`, e.Name, e.Email, e.Phone, e.Message)

	return s.send("New Enquiry - "+e.Name, body)
}

func (s *EmailService) SendAppointmentNotification(a Appointment) error {
	body := fmt.Sprintf(`
<p>New appointment booked.</p>
<ul>
  <li><strong>Name:</strong> %s</li>
  <li><strong>Phone:</strong> %s</li>
  <li><strong>Date:</strong> %s %s</li>
  <li><strong>Service:</strong> %s</li>
</ul>`, a.Name, a.Phone, a.Date, a.Time, a.Service)

	return s.send("New Appointment - "+a.Name, body)
}
