// Package hub fans marker snapshots out to every connected WebSocket client.
// The wire protocol is one-way and delta-free: after every mutation the full
// live set is pushed to everyone, and a fresh subscriber gets the current set
// immediately instead of waiting for the next mutation.
package hub

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/borsel2002/yollar-burada/internal/domain"
	"github.com/borsel2002/yollar-burada/internal/metrics"
)

const (
	pingInterval   = 30 * time.Second
	pongWait       = 60 * time.Second
	writeWait      = 10 * time.Second
	maxMessageSize = 1024
	sendBuffer     = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Клиенты раздаются с любого origin; маркеры и так публичные.
		return true
	},
}

// Envelope is the only server→client message shape.
type Envelope struct {
	Type string          `json:"type"`
	Data []domain.Marker `json:"data"`
}

// SnapshotSource supplies the current live set for newly subscribed clients.
type SnapshotSource interface {
	LiveMarkers() []domain.Marker
}

type Hub struct {
	clients    map[*Client]struct{}
	mu         sync.RWMutex
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
	source     SnapshotSource
	logger     *slog.Logger
}

func New(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client, 16),
		unregister: make(chan *Client, 16),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// SetSource must be called before the hub serves its first subscriber. It is
// split from New because the snapshot source (the marker service) is itself
// constructed with the hub as its publisher.
func (h *Hub) SetSource(src SnapshotSource) {
	h.source = src
}

// Run drives registration, unregistration and broadcast from a single
// goroutine, so connection bookkeeping never interleaves with delivery.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			h.drainRegister()
			h.logger.Info("hub stopped", slog.String("reason", ctx.Err().Error()))
			return

		case client := <-h.register:
			h.add(client)

		case client := <-h.unregister:
			h.drop(client)

		case payload := <-h.broadcast:
			h.deliver(payload)
		}
	}
}

// Publish queues a snapshot for delivery to all open connections. Each
// mutation publishes independently; payloads are delivered in publish order.
func (h *Hub) Publish(markers []domain.Marker) {
	if markers == nil {
		markers = []domain.Marker{}
	}
	payload, err := json.Marshal(Envelope{Type: "markers", Data: markers})
	if err != nil {
		h.logger.Error("encode snapshot failed", slog.Any("error", err))
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		metrics.BroadcastsDropped.Inc()
		h.logger.Error("broadcast queue full, snapshot dropped")
	}
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) add(client *Client) {
	// Snapshot first, then membership: the initial state lands in the send
	// queue before any later broadcast can, so the client never observes a
	// future state ahead of the current one.
	var markers []domain.Marker
	if h.source != nil {
		markers = h.source.LiveMarkers()
	}
	if markers == nil {
		markers = []domain.Marker{}
	}
	initial, err := json.Marshal(Envelope{Type: "markers", Data: markers})
	if err != nil {
		h.logger.Error("encode initial snapshot failed", slog.Any("error", err))
		client.close()
		return
	}
	client.send <- initial
	client.setState(StateOpen)

	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()

	metrics.Subscribers.Set(float64(h.Subscribers()))
	h.logger.Info("subscriber registered",
		slog.String("remote", client.remote),
		slog.Int("subscribers", h.Subscribers()),
	)
}

// drop removes a connection. Closed is terminal: the same client is never
// resurrected, a reconnecting peer arrives as a new one.
func (h *Hub) drop(client *Client) {
	h.mu.Lock()
	_, ok := h.clients[client]
	if ok {
		delete(h.clients, client)
	}
	h.mu.Unlock()

	if !ok {
		return // already dropped; unregister is idempotent
	}
	client.close()

	metrics.Subscribers.Set(float64(h.Subscribers()))
	h.logger.Info("subscriber unregistered",
		slog.String("remote", client.remote),
		slog.Int("subscribers", h.Subscribers()),
	)
}

// deliver pushes one payload to every open connection. A slow or broken
// client loses its subscription; it never stalls delivery to the others.
func (h *Hub) deliver(payload []byte) {
	h.mu.RLock()
	stalled := make([]*Client, 0)
	for client := range h.clients {
		if client.state() != StateOpen {
			continue
		}
		select {
		case client.send <- payload:
		default:
			stalled = append(stalled, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range stalled {
		h.logger.Warn("subscriber send queue full, dropping connection",
			slog.String("remote", client.remote),
		)
		h.drop(client)
	}
}

// drainRegister closes connections that squeezed into the register queue
// before done was closed; nothing will consume them after Run returns.
func (h *Hub) drainRegister() {
	for {
		select {
		case client := <-h.register:
			client.close()
			_ = client.conn.Close()
		default:
			return
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.clients = make(map[*Client]struct{})
	h.mu.Unlock()

	for _, client := range clients {
		client.close()
	}
	metrics.Subscribers.Set(0)
}

// ServeWS upgrades an HTTP request and subscribes the resulting connection.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", slog.Any("error", err))
		return
	}

	client := newClient(h, conn, r.RemoteAddr)

	select {
	case h.register <- client:
	case <-h.done:
		// hub already stopped; refuse instead of queueing forever
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
