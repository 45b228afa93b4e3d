package notify

import (
	"context"
	"errors"
	"sync"
)

// ErrBrokerClosed возвращается после Close
var ErrBrokerClosed = errors.New("notify: broker closed")

// MemoryBroker - брокер внутри процесса, используется по умолчанию
type MemoryBroker struct {
	mu     sync.RWMutex
	topics map[string]map[*subscription]struct{}
	closed bool
	// done закрывается в Close и отпускает горутины подписок
	done chan struct{}
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{
		topics: make(map[string]map[*subscription]struct{}),
		done:   make(chan struct{}),
	}
}

// Publish рассылает сообщение текущим подписчикам темы, не дожидаясь их
func (b *MemoryBroker) Publish(_ context.Context, topic string, payload []byte) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrBrokerClosed
	}
	for sub := range b.topics[topic] {
		sub.deliver(payload)
	}
	return nil
}

func (b *MemoryBroker) Subscribe(ctx context.Context, topic string) (<-chan []byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrBrokerClosed
	}

	sub := newSubscription()
	if b.topics[topic] == nil {
		b.topics[topic] = make(map[*subscription]struct{})
	}
	b.topics[topic][sub] = struct{}{}

	go func() {
		select {
		case <-ctx.Done():
			b.remove(topic, sub)
		case <-b.done:
		}
	}()
	return sub.out, nil
}

func (b *MemoryBroker) remove(topic string, sub *subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if subs, ok := b.topics[topic]; ok {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(b.topics, topic)
		}
	}
	sub.close()
}

// Subscribers возвращает число подписчиков темы
func (b *MemoryBroker) Subscribers(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[topic])
}

func (b *MemoryBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	close(b.done)
	for topic, subs := range b.topics {
		for sub := range subs {
			sub.close()
		}
		delete(b.topics, topic)
	}
	return nil
}
