package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/domain"
)

type AlertRepository interface {
	Create(ctx context.Context, alert *domain.SOSAlert) error
	Get(ctx context.Context, id uuid.UUID) (*domain.SOSAlert, error)
	TransitionHospital(ctx context.Context, alertID uuid.UUID, status domain.AlertStatus, responderID uuid.UUID) error
	TransitionDonor(ctx context.Context, alertID uuid.UUID, status domain.AlertStatus, donorID uuid.UUID) error
	ListPendingForHospital(ctx context.Context, hospitalID uuid.UUID) ([]*domain.SOSAlert, error)
	ListForRequester(ctx context.Context, requesterID uuid.UUID) ([]*domain.SOSAlert, error)
	ListAll(ctx context.Context) ([]*domain.SOSAlert, error)
}

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

func (p *Postgres) Alerts() AlertRepository        { return p.Alert }
func (p *Postgres) Inventories() InventoryRepository { return p.Inventory }
func (p *Postgres) Users() UserRepository          { return p.User }
