// Package email sends HTML emails over SMTP.
package email

import (
	"fmt"
	"time"

	"gopkg.in/mail.v2"
)

const dialTimeout = 30 * time.Second

type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
	fromName string
}

func NewClient(smtpHost string, smtpPort int, username, password, from, fromName string) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
		fromName: fromName,
	}
}

// Send delivers an HTML email to a single recipient.
func (c *Client) Send(to, subject, htmlBody string) error {
	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)
	dialer.Timeout = dialTimeout

	if err := dialer.DialAndSend(c.newMessage(to, subject, htmlBody)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}

	return nil
}

func (c *Client) newMessage(to, subject, htmlBody string) *mail.Message {
	message := mail.NewMessage()

	if c.fromName != "" {
		message.SetAddressHeader("From", c.from, c.fromName)
	} else {
		message.SetHeader("From", c.from)
	}
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", htmlBody)

	return message
}
