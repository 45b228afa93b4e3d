package webhook

import (
	"context"

	"github.com/shenikar/tourist_safety/internal/metrics"
	"github.com/shenikar/tourist_safety/internal/notify"
	"github.com/sirupsen/logrus"
)

// Dispatcher читает события тревог из подписки и пересылает их вебхуку
type Dispatcher struct {
	sender *Sender
	logger *logrus.Logger
}

func NewDispatcher(sender *Sender, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{sender: sender, logger: logger}
}

// Run обрабатывает сообщения до отмены ctx или закрытия канала
func (d *Dispatcher) Run(ctx context.Context, messages <-chan []byte) error {
	d.logger.Info("Starting webhook dispatcher...")
	defer d.logger.Info("Stopping webhook dispatcher.")

	for {
		select {
		case <-ctx.Done():
			return nil
		case payload, ok := <-messages:
			if !ok {
				return nil
			}
			d.dispatch(ctx, payload)
		}
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, payload []byte) {
	event, err := notify.DecodeAlertEvent(payload)
	if err != nil {
		d.logger.WithError(err).Warn("Skipping malformed alert event")
		metrics.WebhookDeliveries.WithLabelValues("skipped").Inc()
		return
	}

	log := d.logger.WithFields(logrus.Fields{
		"alert_id":   event.Data.ID,
		"tourist_id": event.Data.TouristID,
		"alert_type": event.Data.AlertType,
	})

	if err := d.sender.Send(ctx, payload); err != nil {
		log.WithError(err).Error("Failed to deliver webhook")
		metrics.WebhookDeliveries.WithLabelValues("failure").Inc()
		return
	}
	log.Debug("Webhook delivered successfully.")
	metrics.WebhookDeliveries.WithLabelValues("success").Inc()
}
