// Package agent is the collaborator-facing sync client: it owns one WebSocket
// subscription to the broadcast hub, reconnects forever on loss, and mirrors
// the live marker set locally so a UI can read state and pre-check delete
// permissions without round trips. Mutations go through the HTTP surface.
package agent

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/borsel2002/yollar-burada/internal/domain"
	"github.com/borsel2002/yollar-burada/internal/expiry"
	"github.com/borsel2002/yollar-burada/pkg/e"
)

// State follows Disconnected → Connecting → Connected → Disconnected, forever.
// There is no terminal failure state; the agent retries until its context is
// cancelled.
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

// Backoff decides how long to wait before the next reconnect attempt.
// Injectable so tests never sleep for real.
type Backoff interface {
	Next() time.Duration
}

type fixedBackoff time.Duration

func (b fixedBackoff) Next() time.Duration { return time.Duration(b) }

func FixedBackoff(d time.Duration) Backoff { return fixedBackoff(d) }

const defaultBackoff = 5 * time.Second

type Agent struct {
	baseURL  string
	wsURL    string
	deviceID string
	http     *http.Client
	dialer   *websocket.Dialer
	backoff  Backoff
	logger   *slog.Logger
	now      func() time.Time

	mu        sync.RWMutex
	markers   []domain.Marker
	refPoint  *domain.ReferencePoint
	connState atomic.Int32
}

// New builds an agent for the service at baseURL (e.g. "http://host:8080").
// backoff may be nil and defaults to a fixed 5 s delay.
func New(baseURL, deviceID string, backoff Backoff, logger *slog.Logger) *Agent {
	if backoff == nil {
		backoff = FixedBackoff(defaultBackoff)
	}
	base := strings.TrimRight(baseURL, "/")
	ws := strings.Replace(base, "https://", "wss://", 1)
	ws = strings.Replace(ws, "http://", "ws://", 1)

	return &Agent{
		baseURL:  base,
		wsURL:    ws + "/api/v1/ws",
		deviceID: deviceID,
		http:     &http.Client{Timeout: 10 * time.Second},
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
		backoff: backoff,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (a *Agent) State() State {
	return State(a.connState.Load())
}

func (a *Agent) setState(s State) {
	a.connState.Store(int32(s))
}

// Run maintains the subscription until ctx is cancelled. Every connection
// loss leads back to Connecting after one backoff period.
func (a *Agent) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			a.setState(StateDisconnected)
			return
		}

		a.setState(StateConnecting)
		conn, resp, err := a.dialer.DialContext(ctx, a.wsURL, nil)
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		if err != nil {
			a.setState(StateDisconnected)
			if ctx.Err() != nil {
				return
			}
			a.logger.Warn("subscribe failed",
				slog.String("url", a.wsURL),
				slog.Any("error", err),
			)
			if !a.wait(ctx) {
				return
			}
			continue
		}

		a.setState(StateConnected)
		a.logger.Info("subscribed", slog.String("url", a.wsURL))

		a.readLoop(ctx, conn)
		_ = conn.Close()
		a.setState(StateDisconnected)

		if ctx.Err() != nil {
			return
		}
		a.logger.Warn("connection lost, reconnecting")
		if !a.wait(ctx) {
			return
		}
	}
}

// wait sleeps one backoff period; false means the context died first.
func (a *Agent) wait(ctx context.Context) bool {
	select {
	case <-time.After(a.backoff.Next()):
		return true
	case <-ctx.Done():
		a.setState(StateDisconnected)
		return false
	}
}

func (a *Agent) readLoop(ctx context.Context, conn *websocket.Conn) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		a.apply(payload)
	}
}

// apply installs a pushed snapshot wholesale. Malformed payloads are dropped
// with a warning and the last-known-good state is kept.
func (a *Agent) apply(payload []byte) {
	var env struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(payload, &env); err != nil || env.Type != "markers" {
		a.logger.Warn("unexpected push payload dropped", slog.String("type", env.Type))
		return
	}

	var markers []domain.Marker
	if err := json.Unmarshal(env.Data, &markers); err != nil {
		a.logger.Warn("malformed marker push dropped", slog.Any("error", err))
		return
	}

	a.mu.Lock()
	a.markers = markers
	a.mu.Unlock()
}

// CurrentMarkers returns the live subset of the last pushed state,
// re-evaluated against the clock at call time: wall-clock expiry can happen
// with no intervening push.
func (a *Agent) CurrentMarkers() []domain.Marker {
	a.mu.RLock()
	snapshot := make([]domain.Marker, len(a.markers))
	copy(snapshot, a.markers)
	a.mu.RUnlock()

	return expiry.FilterLive(snapshot, a.now())
}

// CanDelete mirrors the server-side policy so a UI can decide whether to show
// a delete control without a round trip.
func (a *Agent) CanDelete(id uuid.UUID) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, m := range a.markers {
		if m.ID == id {
			return expiry.CanDelete(m, a.now(), a.deviceID)
		}
	}
	return false
}

// SetReferencePoint installs the device's last known location; markers may
// only be created within its radius. Local state, recomputed as the device
// moves, never sent to the server.
func (a *Agent) SetReferencePoint(c domain.Coordinates) {
	rp := domain.NewReferencePoint(c)
	a.mu.Lock()
	a.refPoint = &rp
	a.mu.Unlock()
}

// CanCreateAt reports whether a marker may be placed at c. Without a reference
// point (location unknown) creation is allowed; the server validates the rest.
func (a *Agent) CanCreateAt(c domain.Coordinates) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.refPoint == nil {
		return true
	}
	return a.refPoint.Contains(c)
}

func (a *Agent) Create(ctx context.Context, req domain.CreateMarkerRequest) (domain.Marker, error) {
	if !a.CanCreateAt(req.Coordinates) {
		return domain.Marker{}, e.Wrap("outside the create radius", e.ErrInvalidInput)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return domain.Marker{}, e.Wrap("encode create request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/v1/markers", bytes.NewReader(body))
	if err != nil {
		return domain.Marker{}, e.Wrap("build create request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Device-ID", a.deviceID)

	resp, err := a.http.Do(httpReq)
	if err != nil {
		return domain.Marker{}, fmt.Errorf("create marker: %v: %w", err, e.ErrTransport)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return domain.Marker{}, statusError(resp)
	}

	var marker domain.Marker
	if err := json.NewDecoder(resp.Body).Decode(&marker); err != nil {
		return domain.Marker{}, e.Wrap("decode created marker", err)
	}
	return marker, nil
}

func (a *Agent) Delete(ctx context.Context, id uuid.UUID) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, a.baseURL+"/api/v1/markers/"+id.String(), nil)
	if err != nil {
		return e.Wrap("build delete request", err)
	}
	httpReq.Header.Set("X-Device-ID", a.deviceID)

	resp, err := a.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("delete marker: %v: %w", err, e.ErrTransport)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	return nil
}

func statusError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	if body, err := io.ReadAll(io.LimitReader(resp.Body, 4096)); err == nil {
		_ = json.Unmarshal(body, &payload)
	}
	msg := payload.Error
	if msg == "" {
		msg = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return e.Wrap(msg, e.ErrInvalidInput)
	case http.StatusForbidden:
		return e.Wrap(msg, e.ErrForbidden)
	case http.StatusNotFound:
		return e.Wrap(msg, e.ErrNotFound)
	default:
		return fmt.Errorf("%s: %w", msg, e.ErrInternal)
	}
}
