package usecase

import (
	"strings"
	"testing"

	"github.com/gogreen/tree-donation-service/internal/domain"
	userdto "github.com/gogreen/tree-donation-service/internal/usecase/dto/user"
)

func TestSupportContactNormalizesWhatsApp(t *testing.T) {
	env := newTestEnv()

	out := env.uc.SupportContact()
	if out.SupportEmail != "support@gogreen.test" {
		t.Errorf("support email = %q", out.SupportEmail)
	}
	// The configured "98765 43210" is 10 bare digits: country code added.
	if out.WhatsAppNumber != "919876543210" {
		t.Errorf("whatsapp = %q, want 919876543210", out.WhatsAppNumber)
	}
	if out.WhatsAppDisplay != "+919876543210" {
		t.Errorf("display = %q", out.WhatsAppDisplay)
	}
}

func TestSendSupportRequestDeliversSynchronously(t *testing.T) {
	env := newTestEnv()

	err := env.uc.SendSupportRequest(&userdto.SupportRequestInput{
		FullName: "Asha Verma",
		Email:    "asha@example.com",
		Subject:  "Certificate missing",
		Message:  "My certificate link 404s.",
	})
	if err != nil {
		t.Fatalf("SendSupportRequest failed: %v", err)
	}

	if len(env.mailer.sent) != 1 {
		t.Fatalf("sent %d mails, want 1", len(env.mailer.sent))
	}
	mail := env.mailer.sent[0]
	if mail.Recipient != "support@gogreen.test" {
		t.Errorf("recipient = %q", mail.Recipient)
	}
	if !strings.HasPrefix(mail.Subject, "[GoGreen Support]") {
		t.Errorf("subject = %q", mail.Subject)
	}
	if !strings.Contains(mail.Body, "asha@example.com") {
		t.Error("requester email missing from body")
	}
	// Nothing queued: support mail must not depend on the worker.
	if len(env.publisher.published) != 0 {
		t.Error("support request went through the queue")
	}
}

func TestSendSupportRequestDefaultsSubject(t *testing.T) {
	env := newTestEnv()

	err := env.uc.SendSupportRequest(&userdto.SupportRequestInput{
		Email:   "asha@example.com",
		Message: "My certificate link 404s.",
	})
	if err != nil {
		t.Fatalf("SendSupportRequest failed: %v", err)
	}

	if len(env.mailer.sent) != 1 {
		t.Fatalf("sent %d mails, want 1", len(env.mailer.sent))
	}
	mail := env.mailer.sent[0]
	if !strings.Contains(mail.Subject, "Support request") {
		t.Errorf("subject = %q, want the default filled in", mail.Subject)
	}
	if !strings.Contains(mail.Body, "Subject: Support request") {
		t.Errorf("body subject line missing default: %q", mail.Body)
	}
}

func TestSendSupportRequestRelayFailure(t *testing.T) {
	env := newTestEnv()
	env.mailer.err = domain.E(domain.KindUpstream, "relay refused")

	err := env.uc.SendSupportRequest(&userdto.SupportRequestInput{
		Email:   "asha@example.com",
		Subject: "Hello",
		Message: "Hi",
	})
	if domain.KindOf(err) != domain.KindUpstream {
		t.Fatalf("error kind = %v, want upstream", domain.KindOf(err))
	}
}

func TestSendSupportRequestValidation(t *testing.T) {
	env := newTestEnv()

	err := env.uc.SendSupportRequest(&userdto.SupportRequestInput{Email: "asha@example.com"})
	if domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("error kind = %v, want validation", domain.KindOf(err))
	}
	if len(env.mailer.sent) != 0 {
		t.Error("mail sent for invalid request")
	}
}
