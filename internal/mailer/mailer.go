package mailer

import (
	"bytes"
	"embed"
	"html/template"

	mail "gopkg.in/mail.v2"
)

const (
	FromName        = "Eggy"
	WelcomeTemplate = "welcome.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, username, email string, data any) error
}

// SMTPClient delivers mail through a plain SMTP relay.
type SMTPClient struct {
	fromEmail string
	dialer    *mail.Dialer
}

func NewSMTPClient(host string, port int, username, password, fromEmail string) *SMTPClient {
	return &SMTPClient{
		fromEmail: fromEmail,
		dialer:    mail.NewDialer(host, port, username, password),
	}
}

// Send renders the named template (blocks "subject" and "body") and
// delivers it to the recipient.
func (c *SMTPClient) Send(templateFile, username, email string, data any) error {
	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		return err
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		return err
	}

	body := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(body, "body", data); err != nil {
		return err
	}

	m := mail.NewMessage()
	m.SetHeader("From", m.FormatAddress(c.fromEmail, FromName))
	m.SetHeader("To", email)
	m.SetHeader("Subject", subject.String())
	m.SetBody("text/html", body.String())

	return c.dialer.DialAndSend(m)
}
