package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/api/handlers/http/admin"
	mock_admin "github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/api/handlers/http/admin/mocks"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/domain"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func withURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestAdminHospitalCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockAdminHospitals(ctrl)
	h := admin.NewHandler(newTestLogger(), svc, nil)

	id := uuid.New()
	wantReq := domain.CreateHospitalRequest{
		Name:    "City Care",
		Email:   "citycare@example.com",
		Address: "12 MG Road",
		Lat:     12.97,
		Lng:     77.59,
	}
	svc.EXPECT().
		CreateHospital(gomock.Any(), wantReq).
		Return(id, nil).
		Times(1)

	body := `{"name":"City Care","email":"citycare@example.com","address":"12 MG Road","lat":12.97,"lng":77.59}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/hospitals", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.AdminHospitalCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[map[string]string](t, rr)
	if got["id"] != id.String() {
		t.Fatalf("unexpected id in response: %q", got["id"])
	}
}

func TestAdminHospitalCreate_BadEmail_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockAdminHospitals(ctrl)
	h := admin.NewHandler(newTestLogger(), svc, nil)

	body := `{"name":"City Care","email":"not-an-email","lat":12.97,"lng":77.59}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/hospitals", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.AdminHospitalCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminHospitalCreate_DuplicateEmail_409(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockAdminHospitals(ctrl)
	h := admin.NewHandler(newTestLogger(), svc, nil)

	svc.EXPECT().
		CreateHospital(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, e.ErrUniqueViolation).
		Times(1)

	body := `{"name":"City Care","email":"citycare@example.com","lat":12.97,"lng":77.59}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/hospitals", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.AdminHospitalCreate(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d body=%s", http.StatusConflict, rr.Code, rr.Body.String())
	}
}

func TestAdminHospitalUpdate_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockAdminHospitals(ctrl)
	h := admin.NewHandler(newTestLogger(), svc, nil)

	id := uuid.New()
	svc.EXPECT().
		UpdateHospital(gomock.Any(), id, gomock.Any()).
		Return(e.ErrNotFound).
		Times(1)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/hospitals/"+id.String(), bytes.NewBufferString(`{"name":"Renamed"}`))
	req = withURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.AdminHospitalUpdate(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestAdminHospitalDelete_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockAdminHospitals(ctrl)
	h := admin.NewHandler(newTestLogger(), svc, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/hospitals/not-a-uuid", nil)
	req = withURLParam(req, "id", "not-a-uuid")
	rr := httptest.NewRecorder()

	h.AdminHospitalDelete(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestAdminAlertList_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_admin.NewMockAlertLister(ctrl)
	h := admin.NewHandler(newTestLogger(), nil, alerts)

	alerts.EXPECT().
		AllAlerts(gomock.Any()).
		Return([]*domain.SOSAlert{
			{ID: uuid.New(), PatientName: "Ramesh", BloodType: domain.BloodOPos},
			{ID: uuid.New(), PatientName: "Meera", BloodType: domain.BloodABNeg},
		}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/alerts", nil)
	rr := httptest.NewRecorder()

	h.AdminAlertList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[map[string]json.RawMessage](t, rr)
	var total int
	if err := json.Unmarshal(got["total"], &total); err != nil || total != 2 {
		t.Fatalf("expected total 2, got %s", got["total"])
	}
}
