package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/domain"
)

// Admin provisions and manages hospital accounts. Creating a hospital also
// zero-initializes its inventory record; deleting one cascades through the
// storage layer's foreign keys.
type Admin struct {
	users     UserRepository
	inventory InventoryRepository
	cache     HospitalCache // may be nil
	logger    *slog.Logger
}

func NewAdmin(users UserRepository, inventory InventoryRepository, cache HospitalCache, logger *slog.Logger) *Admin {
	return &Admin{users: users, inventory: inventory, cache: cache, logger: logger}
}

// invalidateDirectory drops the cached hospital listing so reads pick up the
// change. Failures are logged, not returned; the next Set overwrites anyway.
func (s *Admin) invalidateDirectory(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("hospital cache invalidate failed", slog.Any("error", err))
	}
}

func (s *Admin) CreateHospital(ctx context.Context, req domain.CreateHospitalRequest) (uuid.UUID, error) {
	hospital := &domain.Hospital{
		ID:      uuid.New(),
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		Location: domain.Location{
			Lat: req.Lat,
			Lng: req.Lng,
		},
	}
	if err := s.users.CreateHospital(ctx, hospital); err != nil {
		return uuid.Nil, err
	}
	if _, err := s.inventory.GetOrCreate(ctx, hospital.ID); err != nil {
		return uuid.Nil, err
	}

	s.invalidateDirectory(ctx)

	s.logger.Info("hospital provisioned",
		slog.String("hospital_id", hospital.ID.String()),
		slog.String("name", hospital.Name),
	)
	return hospital.ID, nil
}

func (s *Admin) ListHospitals(ctx context.Context) ([]domain.Hospital, error) {
	return s.users.ListHospitals(ctx)
}

func (s *Admin) UpdateHospital(ctx context.Context, id uuid.UUID, req domain.UpdateHospitalRequest) error {
	hospital, err := s.users.GetHospital(ctx, id)
	if err != nil {
		return err
	}
	if req.Name != nil {
		hospital.Name = *req.Name
	}
	if req.Email != nil {
		hospital.Email = *req.Email
	}
	if req.Address != nil {
		hospital.Address = *req.Address
	}
	if req.Lat != nil {
		hospital.Location.Lat = *req.Lat
	}
	if req.Lng != nil {
		hospital.Location.Lng = *req.Lng
	}
	if err := s.users.UpdateHospital(ctx, hospital); err != nil {
		return err
	}
	s.invalidateDirectory(ctx)
	return nil
}

func (s *Admin) DeleteHospital(ctx context.Context, id uuid.UUID) error {
	if err := s.users.DeleteHospital(ctx, id); err != nil {
		return err
	}
	s.invalidateDirectory(ctx)
	s.logger.Info("hospital deleted", slog.String("hospital_id", id.String()))
	return nil
}
