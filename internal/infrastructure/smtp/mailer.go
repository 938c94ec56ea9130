package smtp

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/gogreen/tree-donation-service/internal/config"
	"github.com/gogreen/tree-donation-service/internal/domain"
)

// Mailer sends plain-text mail over SMTP with STARTTLS, matching the relay
// setup the service is deployed against.
type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewMailer(cfg config.SMTP) *Mailer {
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	return &Mailer{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     from,
	}
}

func (m *Mailer) Configured() bool {
	return m.host != "" && m.from != ""
}

func (m *Mailer) Send(recipient, subject, body string) error {
	if !m.Configured() {
		return domain.E(domain.KindUpstream, "mail relay is not configured")
	}

	headers := []string{
		"From: " + m.from,
		"To: " + recipient,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
	}
	message := strings.Join(headers, "\r\n") + "\r\n\r\n" + body

	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{recipient}, []byte(message)); err != nil {
		return domain.Wrap(domain.KindUpstream, "failed to send mail", err)
	}
	return nil
}
