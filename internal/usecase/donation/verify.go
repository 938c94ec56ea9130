package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/gogreen/tree-donation-service/internal/domain"
	donationdto "github.com/gogreen/tree-donation-service/internal/usecase/dto/donation"
)

// paymentSignature is the gateway's checkout signature: HMAC-SHA256 over
// "orderID|paymentID", hex encoded.
func paymentSignature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPayment settles a donation. The client-supplied signature gates the
// flow, but the amount and order binding are reconciled against the
// gateway's own payment record, never against anything the client sent.
func (uc *DefaultDonationUsecase) VerifyPayment(ctx context.Context, input *donationdto.VerifyPaymentInput) (*donationdto.VerifyPaymentOutput, error) {
	started := time.Now()
	result := "error"
	defer func() {
		uc.Metrics.VerificationDuration.WithLabelValues(result).Observe(time.Since(started).Seconds())
	}()

	if input.GatewayOrderID == "" || input.GatewayPaymentID == "" || input.GatewaySignature == "" {
		result = "invalid_input"
		return nil, domain.E(domain.KindValidation, "order id, payment id and signature are required")
	}

	donation, err := uc.DonationRepo.GetDonationByOrderID(input.GatewayOrderID)
	if err != nil {
		result = "not_found"
		return nil, err
	}

	// Retries of an already settled order succeed without touching state.
	if donation.PaymentStatus == domain.PaymentPaid {
		result = "already_paid"
		return &donationdto.VerifyPaymentOutput{
			Message:    "payment already verified",
			DonationID: donation.ID,
		}, nil
	}

	expected := paymentSignature(uc.gatewaySecret, input.GatewayOrderID, input.GatewayPaymentID)
	if !hmac.Equal([]byte(expected), []byte(input.GatewaySignature)) {
		if err := uc.DonationRepo.MarkPaymentFailed(input.GatewayOrderID); err != nil {
			return nil, err
		}
		uc.Metrics.PaymentsFailedTotal.WithLabelValues("signature_mismatch").Inc()
		result = "signature_mismatch"
		return nil, domain.E(domain.KindIntegrity, "payment signature verification failed")
	}

	payment, err := uc.Gateway.GetPayment(ctx, input.GatewayPaymentID)
	if err != nil {
		uc.Metrics.GatewayErrorsTotal.WithLabelValues("get_payment").Inc()
		result = "gateway_error"
		return nil, err
	}

	if payment.OrderID != donation.GatewayOrderID || payment.Amount != donation.AmountPaise {
		if err := uc.DonationRepo.MarkPaymentFailed(input.GatewayOrderID); err != nil {
			return nil, err
		}
		uc.Metrics.PaymentsFailedTotal.WithLabelValues("details_mismatch").Inc()
		result = "details_mismatch"
		return nil, domain.E(domain.KindIntegrity, "payment details do not match the order")
	}

	if payment.Status != "authorized" && payment.Status != "captured" {
		result = "not_completed"
		return nil, domain.E(domain.KindNotCompleted, "payment is not completed yet")
	}

	paidAt := time.Now().UTC()
	committed, err := uc.DonationRepo.CommitPaid(input.GatewayOrderID, input.GatewayPaymentID, input.GatewaySignature, paidAt)
	if err != nil {
		return nil, err
	}
	if !committed {
		// Lost the race against a concurrent verification; the winner
		// already notified the operator.
		result = "already_paid"
		return &donationdto.VerifyPaymentOutput{
			Message:    "payment already verified",
			DonationID: donation.ID,
		}, nil
	}

	uc.Metrics.PaymentsVerifiedTotal.WithLabelValues(donation.Currency).Inc()
	uc.Metrics.PaymentsAmountTotal.WithLabelValues(donation.Currency).Add(float64(donation.AmountPaise))
	result = "verified"

	donation.PaymentStatus = domain.PaymentPaid
	donation.GatewayPaymentID = input.GatewayPaymentID
	donation.GatewaySignature = input.GatewaySignature
	donation.PaidAt = &paidAt

	if uc.adminEmail != "" {
		event := uc.Builder.PaymentReceivedEmail(uc.adminEmail, donation)
		if err := uc.Dispatcher.Dispatch(ctx, event); err != nil {
			slog.Error("failed to enqueue payment notification",
				"donation_id", donation.ID, "error", err)
		}
	}

	return &donationdto.VerifyPaymentOutput{
		Message:    "payment verified successfully",
		DonationID: donation.ID,
	}, nil
}
