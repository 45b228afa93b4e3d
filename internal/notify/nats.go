package notify

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
)

// NATSBroker публикует сообщения в core NATS subjects
type NATSBroker struct {
	nc *nats.Conn
}

func NewNATSBroker(nc *nats.Conn) *NATSBroker {
	return &NATSBroker{nc: nc}
}

func (b *NATSBroker) Publish(_ context.Context, topic string, payload []byte) error {
	if err := b.nc.Publish(topic, payload); err != nil {
		return fmt.Errorf("failed to publish to NATS subject %s: %w", topic, err)
	}
	return nil
}

func (b *NATSBroker) Subscribe(ctx context.Context, topic string) (<-chan []byte, error) {
	sub := newSubscription()
	natsSub, err := b.nc.Subscribe(topic, func(msg *nats.Msg) {
		sub.deliver(msg.Data)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to NATS subject %s: %w", topic, err)
	}
	// Flush гарантирует, что сервер принял подписку до первой публикации
	if err := b.nc.Flush(); err != nil {
		_ = natsSub.Unsubscribe()
		return nil, fmt.Errorf("failed to flush NATS subscription: %w", err)
	}

	go func() {
		<-ctx.Done()
		_ = natsSub.Unsubscribe()
		sub.close()
	}()
	return sub.out, nil
}

// Close сбрасывает буфер публикаций, соединением владеет вызывающий
func (b *NATSBroker) Close() error {
	if err := b.nc.Flush(); err != nil {
		return fmt.Errorf("failed to flush NATS connection: %w", err)
	}
	return nil
}
