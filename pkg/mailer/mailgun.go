package mailer

import (
	"context"
	"fmt"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

// Mailgun wraps Mailgun client configuration.
type Mailgun struct {
	Domain     string
	APIKey     string
	Sender     string
	SenderName string
}

func NewMailgun(domain, apiKey, sender, senderName string) *Mailgun {
	return &Mailgun{Domain: domain, APIKey: apiKey, Sender: sender, SenderName: senderName}
}

// Send delivers a rendered email job via Mailgun.
func (m *Mailgun) Send(ctx context.Context, job EmailJob) error {
	client := mg.NewMailgun(m.Domain, m.APIKey)

	from := m.Sender
	if m.SenderName != "" {
		from = fmt.Sprintf("%s <%s>", m.SenderName, m.Sender)
	}

	to := job.To
	if job.ToName != "" {
		to = fmt.Sprintf("%s <%s>", job.ToName, job.To)
	}

	msg := client.NewMessage(from, job.Subject, job.Text, to)
	if job.HTML != "" {
		msg.SetHtml(job.HTML)
	}

	c, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, _, err := client.Send(c, msg)
	return err
}
