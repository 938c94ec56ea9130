package usecase

import (
	"strings"

	"github.com/gogreen/tree-donation-service/internal/domain"
	userdto "github.com/gogreen/tree-donation-service/internal/usecase/dto/user"
)

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SupportContact returns the team's reachable addresses. A bare 10-digit
// WhatsApp number gets the Indian country code prefixed.
func (uc *DefaultUserUsecase) SupportContact() *userdto.SupportContactOutput {
	digits := digitsOnly(uc.supportWhatsApp)
	if len(digits) == 10 {
		digits = "91" + digits
	}

	display := ""
	if digits != "" {
		display = "+" + digits
	}

	return &userdto.SupportContactOutput{
		SupportEmail:    uc.supportEmail,
		WhatsAppNumber:  digits,
		WhatsAppDisplay: display,
	}
}

// SendSupportRequest relays the message synchronously: the caller must know
// whether it reached the team, so this never goes through the queue.
func (uc *DefaultUserUsecase) SendSupportRequest(input *userdto.SupportRequestInput) error {
	email := normalizeEmail(input.Email)
	subject := strings.TrimSpace(input.Subject)
	message := strings.TrimSpace(input.Message)

	if email == "" || message == "" {
		return domain.E(domain.KindValidation, "email and message are required")
	}
	if subject == "" {
		subject = "Support request"
	}
	if uc.supportEmail == "" {
		return domain.E(domain.KindUpstream, "support mailbox is not configured")
	}

	mailSubject, body := uc.Builder.SupportEmail(
		strings.TrimSpace(input.FullName), email, strings.TrimSpace(input.Phone), subject, message)

	if err := uc.Mailer.Send(uc.supportEmail, mailSubject, body); err != nil {
		return domain.Wrap(domain.KindUpstream, "failed to send support request", err)
	}
	return nil
}
