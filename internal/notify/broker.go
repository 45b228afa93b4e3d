// Package notify доставляет события о тревогах подписчикам через брокер публикаций.
// Доставка не более одного раза: медленный подписчик теряет сообщения, но не тормозит остальных.
package notify

import (
	"context"
	"sync"
)

// SubscriberBuffer - размер буфера канала одного подписчика
const SubscriberBuffer = 64

// Broker - транспорт публикации и подписки по темам
type Broker interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	// Subscribe возвращает канал сообщений темы. Канал закрывается при отмене ctx или Close брокера.
	Subscribe(ctx context.Context, topic string) (<-chan []byte, error)
	Close() error
}

// subscription - канал подписчика с неблокирующей доставкой
type subscription struct {
	mu     sync.Mutex
	out    chan []byte
	closed bool
}

func newSubscription() *subscription {
	return &subscription{out: make(chan []byte, SubscriberBuffer)}
}

// deliver возвращает false, если сообщение отброшено
func (s *subscription) deliver(payload []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.out <- payload:
		return true
	default:
		return false
	}
}

func (s *subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.out)
	}
}
