package public

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/pkg/e"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	switch {
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, e.ErrAlreadyResolved):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": "already resolved"})
	case errors.Is(err, e.ErrInsufficientStock):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": "insufficient stock"})
	case errors.Is(err, e.ErrConflict):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": "conflict"})
	case errors.Is(err, e.ErrInvalidBloodType):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid blood type"})
	case errors.Is(err, e.ErrInvalidCoordinates):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid coordinates"})
	case errors.Is(err, e.ErrInvalidCount):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid inventory count"})
	case errors.Is(err, e.ErrInvalidInput):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
