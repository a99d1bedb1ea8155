package public

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/domain"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go

type Dispatcher interface {
	SubmitAlert(ctx context.Context, req domain.SubmitAlertRequest) (*domain.SOSAlert, error)
	RespondAsHospital(ctx context.Context, req domain.HospitalResponseRequest) (domain.RespondResult, error)
	RespondAsDonor(ctx context.Context, req domain.DonorResponseRequest) (domain.RespondResult, error)
}

type Directory interface {
	PendingForHospital(ctx context.Context, hospitalID uuid.UUID) ([]domain.PendingAlert, error)
	AlertsForRequester(ctx context.Context, requesterID uuid.UUID) ([]*domain.SOSAlert, error)
	NearbyHospitals(ctx context.Context, requesterID uuid.UUID, limit int) ([]domain.NearbyHospital, error)
	DonorsForAlert(ctx context.Context, alertID uuid.UUID, requesterID uuid.UUID) ([]domain.Donor, error)
	UpdateDonorProfile(ctx context.Context, donorID uuid.UUID, req domain.UpdateDonorProfileRequest) error
	UpdateLocation(ctx context.Context, userID uuid.UUID, req domain.UpdateLocationRequest) error
}

type Inventory interface {
	Get(ctx context.Context, hospitalID uuid.UUID) (*domain.InventoryRecord, error)
	SetCounts(ctx context.Context, hospitalID uuid.UUID, counts domain.BloodCounts) error
}

type Handler struct {
	logger     *slog.Logger
	Dispatcher Dispatcher
	Directory  Directory
	Inventory  Inventory
}

func NewHandler(logger *slog.Logger, dispatcher Dispatcher, directory Directory, inventory Inventory) *Handler {
	return &Handler{
		logger:     logger,
		Dispatcher: dispatcher,
		Directory:  directory,
		Inventory:  inventory,
	}
}

// SOSCreate handles POST /sos.
func (h *Handler) SOSCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.SubmitAlertRequest
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

	alert, err := h.Dispatcher.SubmitAlert(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("sos alert submitted",
		slog.String("alert_id", alert.ID.String()),
		slog.String("blood_type", string(alert.BloodType)),
	)
	h.writeJSON(w, http.StatusCreated, alert)
}

// SOSListForRequester handles GET /sos/requester/{id}.
func (h *Handler) SOSListForRequester(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	alerts, err := h.Directory.AlertsForRequester(r.Context(), requesterID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"alerts": alerts})
}

// SOSDonors handles GET /sos/{id}/donors?requester_id=...
func (h *Handler) SOSDonors(w http.ResponseWriter, r *http.Request) {
	alertID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	requesterID, err := uuid.Parse(r.URL.Query().Get("requester_id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid requester_id"})
		return
	}

	donors, err := h.Directory.DonorsForAlert(r.Context(), alertID, requesterID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"donors": donors})
}

// HospitalPending handles GET /hospital/{id}/alerts.
func (h *Handler) HospitalPending(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	alerts, err := h.Directory.PendingForHospital(r.Context(), hospitalID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"alerts": alerts})
}

type hospitalRespondBody struct {
	AlertID string `json:"alert_id" validate:"required,uuid"`
	Action  string `json:"action" validate:"required,oneof=accept decline"`
}

// HospitalRespond handles POST /hospital/{id}/respond.
func (h *Handler) HospitalRespond(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	hospitalID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var body hospitalRespondBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(body); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	alertID, err := uuid.Parse(body.AlertID)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid alert_id"})
		return
	}

	res, err := h.Dispatcher.RespondAsHospital(r.Context(), domain.HospitalResponseRequest{
		AlertID:    alertID,
		HospitalID: hospitalID,
		Action:     domain.ResponseAction(body.Action),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("hospital responded",
		slog.String("alert_id", alertID.String()),
		slog.String("hospital_id", hospitalID.String()),
		slog.String("action", body.Action),
	)
	h.writeJSON(w, http.StatusOK, res)
}

// HospitalInventoryGet handles GET /hospital/{id}/inventory.
func (h *Handler) HospitalInventoryGet(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	rec, err := h.Inventory.Get(r.Context(), hospitalID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, rec)
}

// HospitalInventorySet handles PUT /hospital/{id}/inventory.
func (h *Handler) HospitalInventorySet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	hospitalID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var counts domain.BloodCounts
	if err := json.NewDecoder(r.Body).Decode(&counts); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.Inventory.SetCounts(r.Context(), hospitalID, counts); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("inventory updated", slog.String("hospital_id", hospitalID.String()))
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

type donorRespondBody struct {
	AlertID string `json:"alert_id" validate:"required,uuid"`
	Action  string `json:"action" validate:"required,oneof=accept decline"`
}

// DonorRespond handles POST /donor/{id}/respond.
func (h *Handler) DonorRespond(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	donorID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var body donorRespondBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(body); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	alertID, err := uuid.Parse(body.AlertID)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid alert_id"})
		return
	}

	res, err := h.Dispatcher.RespondAsDonor(r.Context(), domain.DonorResponseRequest{
		AlertID: alertID,
		DonorID: donorID,
		Action:  domain.ResponseAction(body.Action),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("donor responded",
		slog.String("alert_id", alertID.String()),
		slog.String("donor_id", donorID.String()),
		slog.String("action", body.Action),
	)
	h.writeJSON(w, http.StatusOK, res)
}

// DonorProfileUpdate handles PUT /donor/{id}/profile.
func (h *Handler) DonorProfileUpdate(w http.ResponseWriter, r *http.Request) {
	donorID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateDonorProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Directory.UpdateDonorProfile(r.Context(), donorID, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// UserLocationUpdate handles PUT /users/{id}/location.
func (h *Handler) UserLocationUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Directory.UpdateLocation(r.Context(), userID, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// NearbyHospitals handles GET /users/{id}/hospitals/nearby?limit=N.
func (h *Handler) NearbyHospitals(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	limit := parseInt(r.URL.Query().Get("limit"), 10)
	if limit > 50 {
		limit = 50
	}

	hospitals, err := h.Directory.NearbyHospitals(r.Context(), userID, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"hospitals": hospitals})
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, name)
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
