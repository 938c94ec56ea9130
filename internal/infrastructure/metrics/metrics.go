package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DonationMetrics covers the donation lifecycle and the notification
// pipeline attached to it.
type DonationMetrics struct {
	OrdersCreatedTotal       prometheus.CounterVec
	OrdersCreatedAmountTotal prometheus.CounterVec

	PaymentsVerifiedTotal prometheus.CounterVec
	PaymentsFailedTotal   prometheus.CounterVec
	PaymentsAmountTotal   prometheus.CounterVec

	ApprovalsTotal prometheus.CounterVec

	VerificationDuration prometheus.HistogramVec

	NotificationsPublishedTotal prometheus.CounterVec
	NotificationsSentTotal      prometheus.CounterVec
	NotificationsFailedTotal    prometheus.CounterVec
	NotificationsDeadTotal      prometheus.CounterVec

	GatewayErrorsTotal prometheus.CounterVec
}

func NewDonationMetrics() *DonationMetrics {
	return &DonationMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donation_orders_created_total",
				Help: "Donation orders created against the payment gateway",
			},
			[]string{"currency"},
		),

		OrdersCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donation_orders_created_amount_paise_total",
				Help: "Total amount of created donation orders, in paise",
			},
			[]string{"currency"},
		),

		PaymentsVerifiedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donation_payments_verified_total",
				Help: "Donations verified as paid",
			},
			[]string{"currency"},
		),

		PaymentsFailedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donation_payments_failed_total",
				Help: "Donations marked failed, by failure reason",
			},
			[]string{"reason"},
		),

		PaymentsAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donation_payments_amount_paise_total",
				Help: "Total verified payment amount, in paise",
			},
			[]string{"currency"},
		),

		ApprovalsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donation_approvals_total",
				Help: "Approval decisions, by outcome",
			},
			[]string{"outcome"},
		),

		VerificationDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "donation_verification_duration_seconds",
				Help:    "Wall time of payment verification, including the gateway fetch",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"result"},
		),

		NotificationsPublishedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notification_events_published_total",
				Help: "Notification events published to the queue",
			},
			[]string{"type"},
		),

		NotificationsSentTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notification_emails_sent_total",
				Help: "Notification emails delivered by the worker",
			},
			[]string{"type"},
		),

		NotificationsFailedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notification_emails_failed_total",
				Help: "Notification send attempts that failed",
			},
			[]string{"type"},
		),

		NotificationsDeadTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notification_events_dead_lettered_total",
				Help: "Notification events moved to the dead-letter topic",
			},
			[]string{"type"},
		),

		GatewayErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_gateway_errors_total",
				Help: "Failed calls to the payment gateway, by operation",
			},
			[]string{"operation"},
		),
	}
}
