package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/domain"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/service"
	mock_service "github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/service/mocks"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/storage/memory"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/pkg/e"
)

type captureQueue struct {
	mu       sync.Mutex
	payloads []domain.NotificationPayload
	fail     bool
}

func (q *captureQueue) Enqueue(_ context.Context, payload domain.NotificationPayload) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.fail {
		return errors.New("queue down")
	}
	q.payloads = append(q.payloads, payload)
	return nil
}

func (q *captureQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.payloads)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	store  *memory.Store
	queue  *captureQueue
	engine *service.DispatchEngine

	requester domain.Requester
	hospital  domain.Hospital
	donor     domain.Donor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewStore()
	queue := &captureQueue{}

	f := &fixture{
		store:  store,
		queue:  queue,
		engine: service.NewDispatchEngine(store, store, store, queue, nil, discardLogger()),
		requester: domain.Requester{
			ID:       uuid.New(),
			Name:     "Asha",
			Email:    "asha@example.com",
			Location: domain.Location{Lat: 12.9716, Lng: 77.5946},
		},
		hospital: domain.Hospital{
			ID:       uuid.New(),
			Name:     "City Care",
			Email:    "citycare@example.com",
			Location: domain.Location{Lat: 12.9720, Lng: 77.5950},
		},
		donor: domain.Donor{
			ID:           uuid.New(),
			Name:         "Ravi",
			Email:        "ravi@example.com",
			BloodType:    domain.BloodOPos,
			Availability: domain.DonorAvailable,
			Location:     domain.Location{Lat: 12.97, Lng: 77.59},
		},
	}
	store.AddRequester(f.requester)
	store.AddHospital(f.hospital)
	store.AddDonor(f.donor)
	return f
}

func (f *fixture) submit(t *testing.T, req domain.SubmitAlertRequest) *domain.SOSAlert {
	t.Helper()
	if req.RequesterID == "" {
		req.RequesterID = f.requester.ID.String()
	}
	if req.BloodType == "" {
		req.BloodType = "O+"
	}
	alert, err := f.engine.SubmitAlert(context.Background(), req)
	require.NoError(t, err)
	return alert
}

func (f *fixture) setStock(t *testing.T, counts domain.BloodCounts) {
	t.Helper()
	require.NoError(t, f.store.SetCounts(context.Background(), f.hospital.ID, counts))
}

func TestSubmitAlert_Defaults(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	alert := f.submit(t, domain.SubmitAlertRequest{})

	assert.Equal(t, "Unknown Patient", alert.PatientName)
	assert.Equal(t, domain.AlertPending, alert.Status)
	assert.Equal(t, domain.AlertPending, alert.DonorStatus)
	require.NotNil(t, alert.Location)
	assert.Equal(t, f.requester.Location, *alert.Location)
}

func TestSubmitAlert_MalformedCoordinatesFallBack(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	alert := f.submit(t, domain.SubmitAlertRequest{Latitude: "not-a-number", Longitude: "77.6"})

	require.NotNil(t, alert.Location)
	assert.Equal(t, f.requester.Location, *alert.Location)
}

func TestSubmitAlert_NearbyHospitalBecomesPreferred(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	alert := f.submit(t, domain.SubmitAlertRequest{})

	require.NotNil(t, alert.PreferredHospital)
	assert.Equal(t, f.hospital.ID, *alert.PreferredHospital)
	assert.Equal(t, f.hospital.Name, alert.PreferredHospitalName)
}

func TestSubmitAlert_DistantHospitalNotPreferred(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	// Roughly 15 km north of the requester.
	alert := f.submit(t, domain.SubmitAlertRequest{
		Latitude:  "13.1065",
		Longitude: "77.5946",
	})

	assert.Nil(t, alert.PreferredHospital)
}

func TestSubmitAlert_UnknownProposedHospitalDegrades(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	alert := f.submit(t, domain.SubmitAlertRequest{PreferredHospitalID: uuid.New().String()})

	assert.Nil(t, alert.PreferredHospital)
}

func TestSubmitAlert_InvalidBloodType(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.engine.SubmitAlert(context.Background(), domain.SubmitAlertRequest{
		RequesterID: f.requester.ID.String(),
		BloodType:   "Z+",
	})
	assert.ErrorIs(t, err, e.ErrInvalidBloodType)
}

func TestRespondAsHospital_AcceptReservesUnit(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.setStock(t, domain.BloodCounts{OPositive: 2})

	alert := f.submit(t, domain.SubmitAlertRequest{})

	res, err := f.engine.RespondAsHospital(context.Background(), domain.HospitalResponseRequest{
		AlertID:    alert.ID,
		HospitalID: f.hospital.ID,
		Action:     domain.ActionAccept,
	})
	require.NoError(t, err)
	assert.Empty(t, res.Warning)

	got, err := f.store.Get(context.Background(), alert.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AlertAccepted, got.Status)
	require.NotNil(t, got.Responder)
	assert.Equal(t, f.hospital.ID, *got.Responder)

	rec, err := f.store.GetOrCreate(context.Background(), f.hospital.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.OPositive)

	assert.Equal(t, 1, f.queue.len())
}

func TestRespondAsHospital_AcceptWithoutStockLeavesPending(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.setStock(t, domain.BloodCounts{})

	alert := f.submit(t, domain.SubmitAlertRequest{})

	_, err := f.engine.RespondAsHospital(context.Background(), domain.HospitalResponseRequest{
		AlertID:    alert.ID,
		HospitalID: f.hospital.ID,
		Action:     domain.ActionAccept,
	})
	assert.ErrorIs(t, err, e.ErrInsufficientStock)

	got, err := f.store.Get(context.Background(), alert.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AlertPending, got.Status)
	assert.Equal(t, 0, f.queue.len())
}

func TestRespondAsHospital_LastUnitGoesToOneAlert(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.setStock(t, domain.BloodCounts{OPositive: 1})

	first := f.submit(t, domain.SubmitAlertRequest{})
	second := f.submit(t, domain.SubmitAlertRequest{})

	_, err := f.engine.RespondAsHospital(context.Background(), domain.HospitalResponseRequest{
		AlertID: first.ID, HospitalID: f.hospital.ID, Action: domain.ActionAccept,
	})
	require.NoError(t, err)

	_, err = f.engine.RespondAsHospital(context.Background(), domain.HospitalResponseRequest{
		AlertID: second.ID, HospitalID: f.hospital.ID, Action: domain.ActionAccept,
	})
	assert.ErrorIs(t, err, e.ErrInsufficientStock)

	got, err := f.store.Get(context.Background(), second.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AlertPending, got.Status)
}

func TestRespondAsHospital_DeclineSkipsInventory(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.setStock(t, domain.BloodCounts{OPositive: 1})

	alert := f.submit(t, domain.SubmitAlertRequest{})

	_, err := f.engine.RespondAsHospital(context.Background(), domain.HospitalResponseRequest{
		AlertID: alert.ID, HospitalID: f.hospital.ID, Action: domain.ActionDecline,
	})
	require.NoError(t, err)

	got, err := f.store.Get(context.Background(), alert.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AlertDeclined, got.Status)

	rec, err := f.store.GetOrCreate(context.Background(), f.hospital.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.OPositive)
}

func TestRespondAsHospital_DuplicateResponse(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.setStock(t, domain.BloodCounts{OPositive: 5})

	alert := f.submit(t, domain.SubmitAlertRequest{})
	req := domain.HospitalResponseRequest{
		AlertID: alert.ID, HospitalID: f.hospital.ID, Action: domain.ActionAccept,
	}

	_, err := f.engine.RespondAsHospital(context.Background(), req)
	require.NoError(t, err)

	_, err = f.engine.RespondAsHospital(context.Background(), req)
	assert.ErrorIs(t, err, e.ErrAlreadyResolved)

	// The duplicate must not have consumed a second unit.
	rec, err := f.store.GetOrCreate(context.Background(), f.hospital.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, rec.OPositive)
}

func TestRespondAsHospital_LostRaceReleasesReservedUnit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)
	inventory := mock_service.NewMockInventoryRepository(ctrl)
	users := mock_service.NewMockUserRepository(ctrl)

	alertID, hospitalID := uuid.New(), uuid.New()
	pending := &domain.SOSAlert{
		ID:          alertID,
		RequesterID: uuid.New(),
		BloodType:   domain.BloodOPos,
		Status:      domain.AlertPending,
		DonorStatus: domain.AlertPending,
	}

	alerts.EXPECT().
		Get(gomock.Any(), alertID).
		Return(pending, nil).
		Times(1)
	users.EXPECT().
		GetHospital(gomock.Any(), hospitalID).
		Return(&domain.Hospital{ID: hospitalID, Name: "City Care"}, nil).
		Times(1)
	inventory.EXPECT().
		Reserve(gomock.Any(), hospitalID, domain.BloodOPos).
		Return(0, nil).
		Times(1)
	alerts.EXPECT().
		TransitionHospital(gomock.Any(), alertID, domain.AlertAccepted, hospitalID).
		Return(e.ErrAlreadyResolved).
		Times(1)
	// The unit reserved before losing the race must be given back.
	inventory.EXPECT().
		Release(gomock.Any(), hospitalID, domain.BloodOPos).
		Return(nil).
		Times(1)

	engine := service.NewDispatchEngine(alerts, inventory, users, nil, nil, discardLogger())

	_, err := engine.RespondAsHospital(context.Background(), domain.HospitalResponseRequest{
		AlertID: alertID, HospitalID: hospitalID, Action: domain.ActionAccept,
	})
	assert.ErrorIs(t, err, e.ErrAlreadyResolved)
}

func TestRespondAsHospital_StockRaceOnResolvedAlert(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)
	inventory := mock_service.NewMockInventoryRepository(ctrl)
	users := mock_service.NewMockUserRepository(ctrl)

	alertID, hospitalID := uuid.New(), uuid.New()
	pending := &domain.SOSAlert{
		ID:          alertID,
		RequesterID: uuid.New(),
		BloodType:   domain.BloodOPos,
		Status:      domain.AlertPending,
		DonorStatus: domain.AlertPending,
	}
	resolved := &domain.SOSAlert{
		ID:          alertID,
		RequesterID: pending.RequesterID,
		BloodType:   domain.BloodOPos,
		Status:      domain.AlertAccepted,
		DonorStatus: domain.AlertPending,
	}

	// The winning accept drains the stock and resolves the alert between the
	// loser's pending pre-check and its reserve.
	gomock.InOrder(
		alerts.EXPECT().Get(gomock.Any(), alertID).Return(pending, nil),
		alerts.EXPECT().Get(gomock.Any(), alertID).Return(resolved, nil),
	)
	users.EXPECT().
		GetHospital(gomock.Any(), hospitalID).
		Return(&domain.Hospital{ID: hospitalID, Name: "City Care"}, nil).
		Times(1)
	inventory.EXPECT().
		Reserve(gomock.Any(), hospitalID, domain.BloodOPos).
		Return(0, e.ErrInsufficientStock).
		Times(1)

	engine := service.NewDispatchEngine(alerts, inventory, users, nil, nil, discardLogger())

	_, err := engine.RespondAsHospital(context.Background(), domain.HospitalResponseRequest{
		AlertID: alertID, HospitalID: hospitalID, Action: domain.ActionAccept,
	})
	assert.ErrorIs(t, err, e.ErrAlreadyResolved)
}

func TestRespondAsHospital_InvalidAction(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	alert := f.submit(t, domain.SubmitAlertRequest{})

	_, err := f.engine.RespondAsHospital(context.Background(), domain.HospitalResponseRequest{
		AlertID: alert.ID, HospitalID: f.hospital.ID, Action: "maybe",
	})
	assert.ErrorIs(t, err, e.ErrInvalidInput)
}

func TestRespondAsHospital_EnqueueFailureIsWarning(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.setStock(t, domain.BloodCounts{OPositive: 1})
	f.queue.fail = true

	alert := f.submit(t, domain.SubmitAlertRequest{})

	res, err := f.engine.RespondAsHospital(context.Background(), domain.HospitalResponseRequest{
		AlertID: alert.ID, HospitalID: f.hospital.ID, Action: domain.ActionAccept,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Warning)

	got, err := f.store.Get(context.Background(), alert.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AlertAccepted, got.Status)
}

func TestRespondAsDonor_AcceptMarksDonorPending(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	alert := f.submit(t, domain.SubmitAlertRequest{})

	_, err := f.engine.RespondAsDonor(context.Background(), domain.DonorResponseRequest{
		AlertID: alert.ID, DonorID: f.donor.ID, Action: domain.ActionAccept,
	})
	require.NoError(t, err)

	got, err := f.store.Get(context.Background(), alert.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AlertAccepted, got.DonorStatus)
	assert.Equal(t, domain.AlertPending, got.Status) // hospital axis untouched

	donor, err := f.store.GetDonor(context.Background(), f.donor.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DonorPending, donor.Availability)
}

func TestRespondAsDonor_DeclineRestoresAvailability(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	first := f.submit(t, domain.SubmitAlertRequest{})
	second := f.submit(t, domain.SubmitAlertRequest{})

	_, err := f.engine.RespondAsDonor(context.Background(), domain.DonorResponseRequest{
		AlertID: first.ID, DonorID: f.donor.ID, Action: domain.ActionAccept,
	})
	require.NoError(t, err)

	_, err = f.engine.RespondAsDonor(context.Background(), domain.DonorResponseRequest{
		AlertID: second.ID, DonorID: f.donor.ID, Action: domain.ActionDecline,
	})
	require.NoError(t, err)

	donor, err := f.store.GetDonor(context.Background(), f.donor.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DonorAvailable, donor.Availability)
}

func TestRespondAsDonor_AvailabilityFailureIsWarning(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)
	users := mock_service.NewMockUserRepository(ctrl)

	alertID, donorID := uuid.New(), uuid.New()
	pending := &domain.SOSAlert{
		ID:          alertID,
		RequesterID: uuid.New(),
		BloodType:   domain.BloodOPos,
		Status:      domain.AlertPending,
		DonorStatus: domain.AlertPending,
	}

	alerts.EXPECT().
		Get(gomock.Any(), alertID).
		Return(pending, nil).
		Times(1)
	users.EXPECT().
		GetDonor(gomock.Any(), donorID).
		Return(&domain.Donor{ID: donorID, Name: "Ravi"}, nil).
		Times(1)
	alerts.EXPECT().
		TransitionDonor(gomock.Any(), alertID, domain.AlertAccepted, donorID).
		Return(nil).
		Times(1)
	users.EXPECT().
		SetDonorAvailability(gomock.Any(), donorID, domain.DonorPending).
		Return(errors.New("db down")).
		Times(1)
	users.EXPECT().
		GetRequester(gomock.Any(), pending.RequesterID).
		Return(nil, e.ErrNotFound).
		Times(1)

	engine := service.NewDispatchEngine(alerts, nil, users, nil, nil, discardLogger())

	res, err := engine.RespondAsDonor(context.Background(), domain.DonorResponseRequest{
		AlertID: alertID, DonorID: donorID, Action: domain.ActionAccept,
	})
	require.NoError(t, err)
	assert.Contains(t, res.Warning, "donor availability")
}

func TestRespondAsDonor_DuplicateResponse(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	alert := f.submit(t, domain.SubmitAlertRequest{})
	req := domain.DonorResponseRequest{
		AlertID: alert.ID, DonorID: f.donor.ID, Action: domain.ActionAccept,
	}

	_, err := f.engine.RespondAsDonor(context.Background(), req)
	require.NoError(t, err)

	_, err = f.engine.RespondAsDonor(context.Background(), req)
	assert.ErrorIs(t, err, e.ErrAlreadyResolved)
}
