package admin

import (
	"context"
	"encoding/json"
	"net/http"

	"log/slog"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/borsel2002/yollar-burada/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AdminMarkers interface {
	Clear(ctx context.Context) error
	Stats(ctx context.Context) domain.MarkerStats
}

type Handler struct {
	logger *slog.Logger
	Admin  AdminMarkers
}

func NewHandler(logger *slog.Logger, admin AdminMarkers) *Handler {
	return &Handler{
		logger: logger,
		Admin:  admin,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// AdminMarkersClear wipes every marker, live or expired.
func (h *Handler) AdminMarkersClear(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	if err := h.Admin.Clear(r.Context()); err != nil {
		l.Error("clear markers failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	l.Info("all markers cleared", slog.String("remote", r.RemoteAddr))
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats := h.Admin.Stats(r.Context())
	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
