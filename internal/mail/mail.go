// Package mail delivers rendered résumés by SMTP.
package mail

import (
	"io"

	"github.com/go-gomail/gomail"

	"cvpdf/internal/config"
)

// Attachment is an in-memory file attached to a message.
type Attachment struct {
	Filename string
	Data     []byte
}

// Sender sends prepared messages.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Send emails the attachments to the configured recipient.
func Send(cfg *config.Config, subject string, attachments ...Attachment) error {
	dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	return SendWith(dialer, cfg, subject, attachments...)
}

// SendWith sends through s instead of dialing the configured server.
func SendWith(s Sender, cfg *config.Config, subject string, attachments ...Attachment) error {
	return s.DialAndSend(newMessage(cfg, subject, attachments))
}

func newMessage(cfg *config.Config, subject string, attachments []Attachment) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", cfg.Email.From)
	msg.SetHeader("To", cfg.Email.To)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", "Adjunto la hoja de vida.<br>")

	for _, a := range attachments {
		data := a.Data
		msg.Attach(a.Filename,
			gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
		)
	}
	return msg
}
