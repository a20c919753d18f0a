package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/borsel2002/yollar-burada/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Markers interface {
	Create(ctx context.Context, req domain.CreateMarkerRequest, creatorID string) (domain.Marker, error)
	Delete(ctx context.Context, id uuid.UUID, requesterID string) error
	List(ctx context.Context) []domain.Marker
}

type Subscriber interface {
	ServeWS(w http.ResponseWriter, r *http.Request)
}

type Handler struct {
	logger     *slog.Logger
	Markers    Markers
	Subscriber Subscriber
}

func NewHandler(logger *slog.Logger, markers Markers, subscriber Subscriber) *Handler {
	return &Handler{
		logger:     logger,
		Markers:    markers,
		Subscriber: subscriber,
	}
}

func (h *Handler) MarkerList(w http.ResponseWriter, r *http.Request) {
	markers := h.Markers.List(r.Context())
	h.writeJSON(w, http.StatusOK, markers)
}

func (h *Handler) MarkerCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	creatorID := r.Header.Get("X-Device-ID")
	if creatorID == "" {
		l.Warn("create without device id", slog.String("remote", r.RemoteAddr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "X-Device-ID header required"})
		return
	}

	var req domain.CreateMarkerRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	marker, err := h.Markers.Create(r.Context(), req, creatorID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	l.Info("marker created",
		slog.String("id", marker.ID.String()),
		slog.String("category", string(marker.Metadata.Category)),
	)
	h.writeJSON(w, http.StatusOK, marker)
}

func (h *Handler) MarkerDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	requesterID := r.Header.Get("X-Device-ID")

	if err := h.Markers.Delete(r.Context(), id, requesterID); err != nil {
		h.handleError(w, err)
		return
	}

	l.Info("marker deleted", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Subscribe hands the connection to the broadcast hub. Everything after the
// upgrade (including errors) is the hub's business, never surfaced here.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	h.Subscriber.ServeWS(w, r)
}
