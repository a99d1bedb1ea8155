package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/domain"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/service"
	mock_service "github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/service/mocks"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/pkg/e"
)

func TestDirectory_PendingForHospital_StockAnnotation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)
	inventory := mock_service.NewMockInventoryRepository(ctrl)

	hospitalID := uuid.New()
	pending := []*domain.SOSAlert{
		{ID: uuid.New(), BloodType: domain.BloodOPos, Status: domain.AlertPending},
		{ID: uuid.New(), BloodType: domain.BloodABNeg, Status: domain.AlertPending},
	}

	alerts.EXPECT().
		ListPendingForHospital(gomock.Any(), hospitalID).
		Return(pending, nil).
		Times(1)
	inventory.EXPECT().
		GetOrCreate(gomock.Any(), hospitalID).
		Return(&domain.InventoryRecord{HospitalID: hospitalID, OPositive: 3}, nil).
		Times(1)

	dir := service.NewDirectory(alerts, inventory, nil, nil, discardLogger())

	got, err := dir.PendingForHospital(context.Background(), hospitalID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, 3, got[0].StockLeft)
	assert.True(t, got[0].CanAccept)
	assert.Equal(t, 0, got[1].StockLeft)
	assert.False(t, got[1].CanAccept)
}

func TestDirectory_DonorsForAlert_OwnershipRequired(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)

	owner := uuid.New()
	alertID := uuid.New()

	alerts.EXPECT().
		Get(gomock.Any(), alertID).
		Return(&domain.SOSAlert{ID: alertID, RequesterID: owner, BloodType: domain.BloodAPos}, nil).
		Times(1)

	dir := service.NewDirectory(alerts, nil, nil, nil, discardLogger())

	_, err := dir.DonorsForAlert(context.Background(), alertID, uuid.New())
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestDirectory_DonorsForAlert_PinsResponder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)
	users := mock_service.NewMockUserRepository(ctrl)

	owner := uuid.New()
	alertID := uuid.New()
	responderID := uuid.New()

	alerts.EXPECT().
		Get(gomock.Any(), alertID).
		Return(&domain.SOSAlert{
			ID: alertID, RequesterID: owner,
			BloodType: domain.BloodOPos, DonorResponder: &responderID,
		}, nil).
		Times(1)
	users.EXPECT().
		ListDonors(gomock.Any()).
		Return([]domain.Donor{
			{ID: uuid.New(), Name: "A", BloodType: domain.BloodOPos, Availability: domain.DonorAvailable},
			{ID: responderID, Name: "B", BloodType: domain.BloodOPos, Availability: domain.DonorPending},
			{ID: uuid.New(), Name: "C", BloodType: domain.BloodANeg, Availability: domain.DonorAvailable},
		}, nil).
		Times(1)

	dir := service.NewDirectory(alerts, nil, users, nil, discardLogger())

	got, err := dir.DonorsForAlert(context.Background(), alertID, owner)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, responderID, got[0].ID)
}

func TestDirectory_NearbyHospitals_CacheHitSkipsStore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock_service.NewMockUserRepository(ctrl)
	cache := mock_service.NewMockHospitalCache(ctrl)

	requesterID := uuid.New()
	near := domain.Hospital{ID: uuid.New(), Name: "Near", Location: domain.Location{Lat: 12.98, Lng: 77.60}}
	far := domain.Hospital{ID: uuid.New(), Name: "Far", Location: domain.Location{Lat: 13.50, Lng: 77.60}}

	users.EXPECT().
		GetRequester(gomock.Any(), requesterID).
		Return(&domain.Requester{ID: requesterID, Location: domain.Location{Lat: 12.97, Lng: 77.59}}, nil).
		Times(1)
	cache.EXPECT().
		Get(gomock.Any()).
		Return([]domain.Hospital{far, near}, nil).
		Times(1)

	dir := service.NewDirectory(nil, nil, users, cache, discardLogger())

	got, err := dir.NearbyHospitals(context.Background(), requesterID, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, near.ID, got[0].Hospital.ID)
	assert.Less(t, got[0].DistanceKm, got[1].DistanceKm)
}

func TestDirectory_NearbyHospitals_CacheMissFillsCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock_service.NewMockUserRepository(ctrl)
	cache := mock_service.NewMockHospitalCache(ctrl)

	requesterID := uuid.New()
	hospitals := []domain.Hospital{
		{ID: uuid.New(), Name: "Only", Location: domain.Location{Lat: 12.98, Lng: 77.60}},
	}

	users.EXPECT().
		GetRequester(gomock.Any(), requesterID).
		Return(&domain.Requester{ID: requesterID, Location: domain.Location{Lat: 12.97, Lng: 77.59}}, nil).
		Times(1)
	cache.EXPECT().
		Get(gomock.Any()).
		Return(nil, errors.New("miss")).
		Times(1)
	users.EXPECT().
		ListHospitals(gomock.Any()).
		Return(hospitals, nil).
		Times(1)
	cache.EXPECT().
		Set(gomock.Any(), hospitals, gomock.AssignableToTypeOf(time.Duration(0))).
		Return(nil).
		Times(1)

	dir := service.NewDirectory(nil, nil, users, cache, discardLogger())

	got, err := dir.NearbyHospitals(context.Background(), requesterID, 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestDirectory_UpdateLocation_RejectsOutOfRange(t *testing.T) {
	t.Parallel()

	dir := service.NewDirectory(nil, nil, nil, nil, discardLogger())

	err := dir.UpdateLocation(context.Background(), uuid.New(), domain.UpdateLocationRequest{Lat: 91, Lng: 0})
	assert.ErrorIs(t, err, e.ErrInvalidCoordinates)
}

func TestAdmin_CreateHospital_InitializesInventory(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock_service.NewMockUserRepository(ctrl)
	inventory := mock_service.NewMockInventoryRepository(ctrl)
	cache := mock_service.NewMockHospitalCache(ctrl)

	users.EXPECT().
		CreateHospital(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
	inventory.EXPECT().
		GetOrCreate(gomock.Any(), gomock.Any()).
		Return(&domain.InventoryRecord{}, nil).
		Times(1)
	cache.EXPECT().
		Invalidate(gomock.Any()).
		Return(nil).
		Times(1)

	admin := service.NewAdmin(users, inventory, cache, discardLogger())

	id, err := admin.CreateHospital(context.Background(), domain.CreateHospitalRequest{
		Name:  "City Care",
		Email: "citycare@example.com",
		Lat:   12.97,
		Lng:   77.59,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestInventoryLedger_SetCounts_RejectsNegative(t *testing.T) {
	t.Parallel()

	ledger := service.NewInventoryLedger(nil, discardLogger())

	err := ledger.SetCounts(context.Background(), uuid.New(), domain.BloodCounts{ONegative: -2})
	assert.ErrorIs(t, err, e.ErrInvalidCount)
}
