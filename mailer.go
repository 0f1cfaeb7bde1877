// mailer.go

package main

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

type mailJob struct {
	subject   string
	message   string
	recipient string
}

// Mailer delivers notification mail in the background. Enqueueing never
// blocks the request and delivery failures are logged only.
type Mailer struct {
	jobs chan mailJob
	send func(mailJob) error
}

func newMailer(cfg Config) *Mailer {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPEmail, cfg.SMTPPassword)
	from := cfg.SMTPEmail
	return &Mailer{
		jobs: make(chan mailJob, 64),
		send: func(job mailJob) error {
			m := gomail.NewMessage()
			m.SetHeader("From", from)
			m.SetHeader("To", job.recipient)
			m.SetHeader("Subject", job.subject)
			m.SetBody("text/html", fmt.Sprintf("<p>%s</p>", job.message))
			return dialer.DialAndSend(m)
		},
	}
}

func (m *Mailer) start() {
	go func() {
		for job := range m.jobs {
			if err := m.send(job); err != nil {
				log.Printf("email to %s failed: %v", job.recipient, err)
				continue
			}
			log.Printf("email sent to %s", job.recipient)
		}
	}()
}

func (m *Mailer) notify(subject, message, recipient string) {
	select {
	case m.jobs <- mailJob{subject: subject, message: message, recipient: recipient}:
	default:
		log.Printf("mail queue full, dropping notification for %s", recipient)
	}
}
