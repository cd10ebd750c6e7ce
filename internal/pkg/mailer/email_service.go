package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendCompanyWelcome(toEmail, ownerName, companyName, hostname string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendCompanyWelcome(toEmail, ownerName, companyName, hostname string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("%s is ready", companyName))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>Your company <strong>%s</strong> has been created.</p>
			<p>Your team signs in at <strong>%s</strong>. Create a workspace and start sharing notes.</p>
		</div>
	`, ownerName, companyName, hostname)

	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}
