package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// AlertRepository owns SOSAlert records and their state machine. Both
// Transition calls are per-alert compare-and-set: they fail with
// e.ErrAlreadyResolved when the axis already left pending, without mutation.
type AlertRepository interface {
	Create(ctx context.Context, alert *domain.SOSAlert) error
	Get(ctx context.Context, id uuid.UUID) (*domain.SOSAlert, error)
	TransitionHospital(ctx context.Context, alertID uuid.UUID, status domain.AlertStatus, responderID uuid.UUID) error
	TransitionDonor(ctx context.Context, alertID uuid.UUID, status domain.AlertStatus, donorID uuid.UUID) error
	ListPendingForHospital(ctx context.Context, hospitalID uuid.UUID) ([]*domain.SOSAlert, error)
	ListForRequester(ctx context.Context, requesterID uuid.UUID) ([]*domain.SOSAlert, error)
	ListAll(ctx context.Context) ([]*domain.SOSAlert, error)
}

// InventoryRepository owns the per-hospital counters. Reserve and Release
// are linearizable per (hospital, blood type) key; Reserve fails with
// e.ErrInsufficientStock when the counter is zero and never goes negative.
type InventoryRepository interface {
	Reserve(ctx context.Context, hospitalID uuid.UUID, t domain.BloodType) (int, error)
	Release(ctx context.Context, hospitalID uuid.UUID, t domain.BloodType) error
	SetCounts(ctx context.Context, hospitalID uuid.UUID, counts domain.BloodCounts) error
	GetOrCreate(ctx context.Context, hospitalID uuid.UUID) (*domain.InventoryRecord, error)
}

type UserRepository interface {
	GetRequester(ctx context.Context, id uuid.UUID) (*domain.Requester, error)
	GetHospital(ctx context.Context, id uuid.UUID) (*domain.Hospital, error)
	ListHospitals(ctx context.Context) ([]domain.Hospital, error)
	CreateHospital(ctx context.Context, h *domain.Hospital) error
	UpdateHospital(ctx context.Context, h *domain.Hospital) error
	DeleteHospital(ctx context.Context, id uuid.UUID) error
	GetDonor(ctx context.Context, id uuid.UUID) (*domain.Donor, error)
	ListDonors(ctx context.Context) ([]domain.Donor, error)
	UpdateDonor(ctx context.Context, d *domain.Donor) error
	SetDonorAvailability(ctx context.Context, donorID uuid.UUID, a domain.DonorAvailability) error
	UpdateLocation(ctx context.Context, userID uuid.UUID, loc domain.Location) error
}

// NotificationQueue is the outbound port. Delivery is fire-and-forget; an
// enqueue failure is surfaced as a warning, never as the operation's error.
type NotificationQueue interface {
	Enqueue(ctx context.Context, payload domain.NotificationPayload) error
}

// HospitalCache is an optional read-through cache for the hospital directory.
// Invalidate drops the cached listing after hospital CRUD.
type HospitalCache interface {
	Get(ctx context.Context) ([]domain.Hospital, error)
	Set(ctx context.Context, hospitals []domain.Hospital, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type DispatchService interface {
	SubmitAlert(ctx context.Context, req domain.SubmitAlertRequest) (*domain.SOSAlert, error)
	RespondAsHospital(ctx context.Context, req domain.HospitalResponseRequest) (domain.RespondResult, error)
	RespondAsDonor(ctx context.Context, req domain.DonorResponseRequest) (domain.RespondResult, error)
}

type DirectoryService interface {
	PendingForHospital(ctx context.Context, hospitalID uuid.UUID) ([]domain.PendingAlert, error)
	AlertsForRequester(ctx context.Context, requesterID uuid.UUID) ([]*domain.SOSAlert, error)
	AllAlerts(ctx context.Context) ([]*domain.SOSAlert, error)
	NearbyHospitals(ctx context.Context, requesterID uuid.UUID, limit int) ([]domain.NearbyHospital, error)
	DonorsForAlert(ctx context.Context, alertID uuid.UUID, requesterID uuid.UUID) ([]domain.Donor, error)
	UpdateDonorProfile(ctx context.Context, donorID uuid.UUID, req domain.UpdateDonorProfileRequest) error
	UpdateLocation(ctx context.Context, userID uuid.UUID, req domain.UpdateLocationRequest) error
}

type InventoryService interface {
	Get(ctx context.Context, hospitalID uuid.UUID) (*domain.InventoryRecord, error)
	SetCounts(ctx context.Context, hospitalID uuid.UUID, counts domain.BloodCounts) error
}

type AdminService interface {
	CreateHospital(ctx context.Context, req domain.CreateHospitalRequest) (uuid.UUID, error)
	ListHospitals(ctx context.Context) ([]domain.Hospital, error)
	UpdateHospital(ctx context.Context, id uuid.UUID, req domain.UpdateHospitalRequest) error
	DeleteHospital(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	DispatchService  DispatchService
	DirectoryService DirectoryService
	InventoryService InventoryService
	AdminService     AdminService
}

func NewService(
	dispatchService DispatchService,
	directoryService DirectoryService,
	inventoryService InventoryService,
	adminService AdminService,
) *Service {
	return &Service{
		DispatchService:  dispatchService,
		DirectoryService: directoryService,
		InventoryService: inventoryService,
		AdminService:     adminService,
	}
}
