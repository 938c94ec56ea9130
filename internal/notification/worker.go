package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gogreen/tree-donation-service/internal/config"
	"github.com/gogreen/tree-donation-service/internal/domain"
	"github.com/gogreen/tree-donation-service/internal/infrastructure/metrics"
)

// Worker drains the notification topic and delivers emails. A failed send
// is retried with linear backoff; exhausted events go to the dead-letter
// topic so a committed payment or approval never depends on the relay.
type Worker struct {
	subscriber domain.SubscriberPort
	publisher  domain.PublisherPort
	mailer     domain.Mailer
	cfg        config.Notifications
	metrics    *metrics.DonationMetrics
}

func NewWorker(
	subscriber domain.SubscriberPort,
	publisher domain.PublisherPort,
	mailer domain.Mailer,
	cfg config.Notifications,
	donationMetrics *metrics.DonationMetrics,
) *Worker {
	return &Worker{
		subscriber: subscriber,
		publisher:  publisher,
		mailer:     mailer,
		cfg:        cfg,
		metrics:    donationMetrics,
	}
}

func (w *Worker) Run(ctx context.Context) error {
	messages, err := w.subscriber.Subscribe(w.cfg.Topic, w.cfg.GroupID)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			w.handle(ctx, msg)
		}
	}
}

func (w *Worker) handle(ctx context.Context, msg domain.Message) {
	var event Event
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		slog.Error("notification event unmarshal failed", "error", err.Error())
		return
	}

	maxAttempts := w.cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	var sendErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		sendErr = w.mailer.Send(event.Recipient, event.Subject, event.Body)
		if sendErr == nil {
			w.metrics.NotificationsSentTotal.WithLabelValues(event.Type).Inc()
			slog.Info("notification sent",
				"type", event.Type,
				"donation_id", event.DonationID,
				"attempt", attempt,
			)
			return
		}

		w.metrics.NotificationsFailedTotal.WithLabelValues(event.Type).Inc()
		slog.Warn("notification send failed",
			"type", event.Type,
			"donation_id", event.DonationID,
			"attempt", attempt,
			"error", sendErr.Error(),
		)

		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}
	}

	w.deadLetter(ctx, event, msg)
}

func (w *Worker) deadLetter(ctx context.Context, event Event, msg domain.Message) {
	event.Attempt = w.cfg.MaxAttempts
	value, err := json.Marshal(event)
	if err != nil {
		value = msg.Value
	}

	if err := w.publisher.Publish(ctx, w.cfg.DLQTopic, domain.Message{Key: msg.Key, Value: value}); err != nil {
		slog.Error("dead-letter publish failed",
			"type", event.Type,
			"donation_id", event.DonationID,
			"error", err.Error(),
		)
		return
	}
	w.metrics.NotificationsDeadTotal.WithLabelValues(event.Type).Inc()
}
