package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/domain"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go

type AdminHospitals interface {
	CreateHospital(ctx context.Context, req domain.CreateHospitalRequest) (uuid.UUID, error)
	ListHospitals(ctx context.Context) ([]domain.Hospital, error)
	UpdateHospital(ctx context.Context, id uuid.UUID, req domain.UpdateHospitalRequest) error
	DeleteHospital(ctx context.Context, id uuid.UUID) error
}

type AlertLister interface {
	AllAlerts(ctx context.Context) ([]*domain.SOSAlert, error)
}

type Handler struct {
	logger *slog.Logger
	Admin  AdminHospitals
	Alerts AlertLister
}

func NewHandler(logger *slog.Logger, admin AdminHospitals, alerts AlertLister) *Handler {
	return &Handler{
		logger: logger,
		Admin:  admin,
		Alerts: alerts,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AdminHospitalCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminHospitalCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	id, err := h.Admin.CreateHospital(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("hospital created", slog.String("id", id.String()), slog.String("name", req.Name))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) AdminHospitalList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminHospitalList", slog.String("remote", r.RemoteAddr))

	hospitals, err := h.Admin.ListHospitals(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"hospitals": hospitals,
		"total":     len(hospitals),
	})
}

func (h *Handler) AdminHospitalUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminHospitalUpdate", slog.String("remote", r.RemoteAddr))

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Admin.UpdateHospital(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("hospital updated", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) AdminHospitalDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminHospitalDelete", slog.String("remote", r.RemoteAddr))

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.Admin.DeleteHospital(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("hospital deleted", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) AdminAlertList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminAlertList", slog.String("remote", r.RemoteAddr))

	alerts, err := h.Alerts.AllAlerts(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alerts listed", slog.Int("count", len(alerts)))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"alerts": alerts,
		"total":  len(alerts),
	})
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
