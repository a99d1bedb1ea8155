package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/domain"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/geo"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/pkg/e"
)

// Directory serves the read-side listings: pending alerts per hospital with
// stock annotations, requester history, nearby hospitals and donor matching.
type Directory struct {
	alerts    AlertRepository
	inventory InventoryRepository
	users     UserRepository
	cache     HospitalCache // may be nil
	logger    *slog.Logger
}

func NewDirectory(
	alerts AlertRepository,
	inventory InventoryRepository,
	users UserRepository,
	cache HospitalCache,
	logger *slog.Logger,
) *Directory {
	return &Directory{
		alerts:    alerts,
		inventory: inventory,
		users:     users,
		cache:     cache,
		logger:    logger,
	}
}

// PendingForHospital lists pending alerts visible to the hospital (broadcast
// or preferred for it), annotated with the hospital's remaining stock for
// each alert's blood group.
func (s *Directory) PendingForHospital(ctx context.Context, hospitalID uuid.UUID) ([]domain.PendingAlert, error) {
	alerts, err := s.alerts.ListPendingForHospital(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	inventory, err := s.inventory.GetOrCreate(ctx, hospitalID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.PendingAlert, 0, len(alerts))
	for _, a := range alerts {
		stock := inventory.Count(a.BloodType)
		out = append(out, domain.PendingAlert{
			Alert:     a,
			StockLeft: stock,
			CanAccept: stock > 0,
		})
	}
	return out, nil
}

func (s *Directory) AlertsForRequester(ctx context.Context, requesterID uuid.UUID) ([]*domain.SOSAlert, error) {
	return s.alerts.ListForRequester(ctx, requesterID)
}

func (s *Directory) AllAlerts(ctx context.Context) ([]*domain.SOSAlert, error) {
	return s.alerts.ListAll(ctx)
}

func (s *Directory) NearbyHospitals(ctx context.Context, requesterID uuid.UUID, limit int) ([]domain.NearbyHospital, error) {
	requester, err := s.users.GetRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	hospitals, err := s.listHospitals(ctx)
	if err != nil {
		return nil, err
	}

	ranked := geo.RankHospitalsByDistance(requester.Location, hospitals)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]domain.NearbyHospital, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, domain.NearbyHospital{Hospital: r.Hospital, DistanceKm: r.DistanceKm})
	}
	return out, nil
}

// DonorsForAlert lists available donors matching the alert's blood group,
// with the alert's donor responder pinned first. Only the alert's own
// requester may view the list.
func (s *Directory) DonorsForAlert(ctx context.Context, alertID uuid.UUID, requesterID uuid.UUID) ([]domain.Donor, error) {
	const op = "directory.DonorsForAlert"

	alert, err := s.alerts.Get(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if alert.RequesterID != requesterID {
		return nil, e.Wrap(op, e.ErrNotFound)
	}

	donors, err := s.users.ListDonors(ctx)
	if err != nil {
		return nil, err
	}
	return geo.EligibleDonors(alert.BloodType, donors, alert.DonorResponder), nil
}

func (s *Directory) UpdateDonorProfile(ctx context.Context, donorID uuid.UUID, req domain.UpdateDonorProfileRequest) error {
	const op = "directory.UpdateDonorProfile"

	donor, err := s.users.GetDonor(ctx, donorID)
	if err != nil {
		return err
	}
	if req.BloodType != nil {
		bt, err := domain.ParseBloodType(*req.BloodType)
		if err != nil {
			return e.Wrap(op, e.ErrInvalidBloodType)
		}
		donor.BloodType = bt
	}
	if req.Lat != nil {
		donor.Location.Lat = *req.Lat
	}
	if req.Lng != nil {
		donor.Location.Lng = *req.Lng
	}
	if !donor.Location.Valid() {
		return e.Wrap(op, e.ErrInvalidCoordinates)
	}
	return s.users.UpdateDonor(ctx, donor)
}

func (s *Directory) UpdateLocation(ctx context.Context, userID uuid.UUID, req domain.UpdateLocationRequest) error {
	const op = "directory.UpdateLocation"

	loc := domain.Location{Lat: req.Lat, Lng: req.Lng}
	if !loc.Valid() {
		return e.Wrap(op, e.ErrInvalidCoordinates)
	}
	return s.users.UpdateLocation(ctx, userID, loc)
}

func (s *Directory) listHospitals(ctx context.Context) ([]domain.Hospital, error) {
	if s.cache != nil {
		if hospitals, err := s.cache.Get(ctx); err == nil && hospitals != nil {
			return hospitals, nil
		}
	}
	hospitals, err := s.users.ListHospitals(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, hospitals, hospitalDirectoryTTL); err != nil {
			s.logger.Warn("hospital cache set failed", slog.Any("error", err))
		}
	}
	return hospitals, nil
}
