package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gogreen/tree-donation-service/internal/domain"
	"github.com/gogreen/tree-donation-service/internal/infrastructure/metrics"
)

// Dispatcher hands rendered emails to the queue. Delivery is the worker's
// problem; callers only learn whether the event was enqueued.
type Dispatcher struct {
	publisher domain.PublisherPort
	topic     string
	metrics   *metrics.DonationMetrics
}

func NewDispatcher(publisher domain.PublisherPort, topic string, donationMetrics *metrics.DonationMetrics) *Dispatcher {
	return &Dispatcher{
		publisher: publisher,
		topic:     topic,
		metrics:   donationMetrics,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	key := []byte(event.Recipient)
	if event.DonationID != 0 {
		key = []byte(fmt.Sprintf("donation-%d", event.DonationID))
	}

	if err := d.publisher.Publish(ctx, d.topic, domain.Message{Key: key, Value: value}); err != nil {
		return err
	}

	if d.metrics != nil {
		d.metrics.NotificationsPublishedTotal.WithLabelValues(event.Type).Inc()
	}
	return nil
}
