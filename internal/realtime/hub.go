// Package realtime рассылает события о тревогах подключенным WebSocket клиентам
package realtime

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shenikar/tourist_safety/internal/metrics"
	"github.com/sirupsen/logrus"
)

// Hub хранит подключенных клиентов и рассылает им сообщения брокера.
// Клиент с переполненным буфером отключается, остальные не ждут.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	upgrader   websocket.Upgrader
	logger     *logrus.Logger
}

// NewHub создает Hub. allowedOrigins пустой или содержащий "*" разрешает любой Origin.
func NewHub(allowedOrigins []string, logger *logrus.Logger) *Hub {
	h := &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		HandshakeTimeout: 10 * time.Second,
		CheckOrigin:      originChecker(allowedOrigins),
	}
	return h
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		if origin == "*" {
			return func(*http.Request) bool { return true }
		}
		set[origin] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		// клиенты без Origin (мобильные приложения, сервисы) не являются браузерами
		if origin == "" || len(set) == 0 {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

// Run обслуживает подключения и пересылает сообщения из messages до отмены ctx или закрытия канала
func (h *Hub) Run(ctx context.Context, messages <-chan []byte) error {
	defer h.shutdown()
	h.logger.Info("Websocket hub started")

	for {
		select {
		case <-ctx.Done():
			return nil

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			total := len(h.clients)
			h.mu.Unlock()
			metrics.WebSocketClients.Inc()
			h.logger.WithFields(logrus.Fields{"client_id": client.id, "total_clients": total}).Info("Websocket client connected")

		case client := <-h.unregister:
			h.remove(client, "disconnected")

		case message, ok := <-messages:
			if !ok {
				h.logger.Warn("Alert subscription closed, stopping websocket hub")
				return nil
			}
			h.broadcast(message)
		}
	}
}

func (h *Hub) broadcast(message []byte) {
	h.mu.RLock()
	var slow []*Client
	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		metrics.WebSocketDropped.Inc()
		h.remove(client, "dropped")
	}
}

func (h *Hub) remove(client *Client, reason string) {
	h.mu.Lock()
	if _, ok := h.clients[client]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client)
	close(client.send)
	total := len(h.clients)
	h.mu.Unlock()

	metrics.WebSocketClients.Dec()
	h.logger.WithFields(logrus.Fields{
		"client_id":     client.id,
		"reason":        reason,
		"total_clients": total,
	}).Info("Websocket client removed")
}

func (h *Hub) shutdown() {
	close(h.done)
	h.mu.Lock()
	closed := len(h.clients)
	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
		metrics.WebSocketClients.Dec()
	}
	h.mu.Unlock()
	h.logger.WithField("clients_closed", closed).Info("Websocket hub stopped")
}

func (h *Hub) unregisterClient(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// ClientCount возвращает число подключенных клиентов
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeWS переводит запрос на WebSocket и подписывает клиента на тревоги
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to upgrade websocket connection")
		return
	}

	client := newClient(h, conn)
	select {
	case h.register <- client:
	case <-h.done:
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
