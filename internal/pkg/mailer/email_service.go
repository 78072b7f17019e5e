package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendHandoffAlert(toEmail string, alert HandoffAlert) error
}

// HandoffAlert carries the conversation summary for the admissions team
// when a visitor asks to speak with a person.
type HandoffAlert struct {
	SessionID       string
	FamilyID        string
	ParentName      string
	ParentEmail     string
	ChildName       string
	TopicsDiscussed []string
	Concerns        []string
	HighIntent      bool
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendHandoffAlert(toEmail string, alert HandoffAlert) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Assistant handoff requested (session %s)", alert.SessionID))

	intent := "No"
	if alert.HighIntent {
		intent = "Yes"
	}
	topics := strings.Join(alert.TopicsDiscussed, ", ")
	if topics == "" {
		topics = "none recorded"
	}
	concerns := strings.Join(alert.Concerns, "; ")
	if concerns == "" {
		concerns = "None raised"
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>A family would like a call from admissions</h2>
			<p><strong>Parent:</strong> %s (%s)</p>
			<p><strong>Child:</strong> %s</p>
			<p><strong>Family ID:</strong> %s</p>
			<p><strong>Topics discussed:</strong> %s</p>
			<p><strong>Concerns raised:</strong> %s</p>
			<p><strong>High intent:</strong> %s</p>
			<p>Session reference: %s</p>
		</div>
	`, alert.ParentName, alert.ParentEmail, alert.ChildName, alert.FamilyID,
		topics, concerns, intent, alert.SessionID)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send handoff alert to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Handoff alert sent to %s\n", toEmail)
	return nil
}
