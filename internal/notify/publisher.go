package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shenikar/tourist_safety/internal/models"
)

const (
	// AlertsTopic - тема созданных тревог
	AlertsTopic = "safety.alerts.created"
	// EventNewAlert - тип события в конверте
	EventNewAlert = "new_alert"
)

// AlertEvent - конверт, который получают подписчики
type AlertEvent struct {
	Type string        `json:"type"`
	Data *models.Alert `json:"data"`
}

// AlertPublisher публикует созданные тревоги в брокер
type AlertPublisher struct {
	broker Broker
	topic  string
}

func NewAlertPublisher(broker Broker) *AlertPublisher {
	return &AlertPublisher{broker: broker, topic: AlertsTopic}
}

// PublishAlert сериализует тревогу в AlertEvent и публикует ее
func (p *AlertPublisher) PublishAlert(ctx context.Context, alert *models.Alert) error {
	payload, err := json.Marshal(AlertEvent{Type: EventNewAlert, Data: alert})
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}
	if err := p.broker.Publish(ctx, p.topic, payload); err != nil {
		return fmt.Errorf("failed to publish alert event: %w", err)
	}
	return nil
}

// DecodeAlertEvent разбирает сообщение темы AlertsTopic
func DecodeAlertEvent(payload []byte) (*AlertEvent, error) {
	var event AlertEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alert event: %w", err)
	}
	if event.Type != EventNewAlert || event.Data == nil {
		return nil, fmt.Errorf("unexpected alert event type %q", event.Type)
	}
	return &event, nil
}
