package notify

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisBroker публикует сообщения через Redis Pub/Sub
type RedisBroker struct {
	client *redis.Client
}

func NewRedisBroker(client *redis.Client) *RedisBroker {
	return &RedisBroker{client: client}
}

func (b *RedisBroker) Publish(ctx context.Context, topic string, payload []byte) error {
	if err := b.client.Publish(ctx, topic, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", topic, err)
	}
	return nil
}

func (b *RedisBroker) Subscribe(ctx context.Context, topic string) (<-chan []byte, error) {
	pubsub := b.client.Subscribe(ctx, topic)
	// Receive дожидается подтверждения подписки
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to Redis channel %s: %w", topic, err)
	}

	sub := newSubscription()
	go func() {
		defer sub.close()
		defer pubsub.Close()
		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				sub.deliver([]byte(msg.Payload))
			}
		}
	}()
	return sub.out, nil
}

// Close не закрывает клиента Redis, им владеет вызывающий
func (b *RedisBroker) Close() error {
	return nil
}
