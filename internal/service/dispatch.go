package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/domain"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/geo"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/pkg/e"
)

const hospitalDirectoryTTL = 30 * time.Second

// DispatchEngine orchestrates the alert lifecycle: submission with
// preferred-hospital resolution, hospital responses gated by inventory
// reservation, and donor responses with the availability side effect.
type DispatchEngine struct {
	alerts    AlertRepository
	inventory InventoryRepository
	users     UserRepository
	queue     NotificationQueue
	cache     HospitalCache // may be nil
	logger    *slog.Logger
}

func NewDispatchEngine(
	alerts AlertRepository,
	inventory InventoryRepository,
	users UserRepository,
	queue NotificationQueue,
	cache HospitalCache,
	logger *slog.Logger,
) *DispatchEngine {
	return &DispatchEngine{
		alerts:    alerts,
		inventory: inventory,
		users:     users,
		queue:     queue,
		cache:     cache,
		logger:    logger,
	}
}

func (s *DispatchEngine) SubmitAlert(ctx context.Context, req domain.SubmitAlertRequest) (*domain.SOSAlert, error) {
	const op = "dispatch.SubmitAlert"

	requesterID, err := uuid.Parse(req.RequesterID)
	if err != nil {
		return nil, e.Wrap(op, e.ErrInvalidInput)
	}
	bloodType, err := domain.ParseBloodType(req.BloodType)
	if err != nil {
		return nil, e.Wrap(op, e.ErrInvalidBloodType)
	}

	requester, err := s.users.GetRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	patientName := req.PatientName
	if patientName == "" {
		patientName = "Unknown Patient"
	}

	// Malformed numeric input is treated as absent, never surfaced as an
	// error: the alert falls back to the requester's stored location.
	location := parseLocation(req.Latitude, req.Longitude)
	if location == nil {
		loc := requester.Location
		location = &loc
	}

	alert := &domain.SOSAlert{
		ID:          uuid.New(),
		RequesterID: requesterID,
		PatientName: patientName,
		BloodType:   bloodType,
		Note:        req.Note,
		Location:    location,
		Status:      domain.AlertPending,
		DonorStatus: domain.AlertPending,
		CreatedAt:   time.Now().UTC(),
	}

	if preferred, ok := s.resolvePreferredHospital(ctx, *location, req.PreferredHospitalID); ok {
		alert.PreferredHospital = &preferred.ID
		alert.PreferredHospitalName = preferred.Name
	}

	if err := s.alerts.Create(ctx, alert); err != nil {
		return nil, err
	}

	s.logger.Info("sos alert created",
		slog.String("alert_id", alert.ID.String()),
		slog.String("requester_id", requesterID.String()),
		slog.String("blood_type", string(bloodType)),
		slog.Bool("has_preferred_hospital", alert.PreferredHospital != nil),
	)
	return alert, nil
}

// resolvePreferredHospital validates a proposed hospital id, falling back to
// the nearest hospital within the preferred radius. A malformed or unknown
// id degrades to "no proposal"; it is never a caller-visible error.
func (s *DispatchEngine) resolvePreferredHospital(ctx context.Context, origin domain.Location, proposedID string) (domain.Hospital, bool) {
	if proposedID != "" {
		id, err := uuid.Parse(proposedID)
		if err == nil {
			candidate, err := s.users.GetHospital(ctx, id)
			if err == nil && geo.DistanceKm(origin, candidate.Location) <= geo.DefaultPreferredRadiusKm {
				return *candidate, true
			}
		}
		return domain.Hospital{}, false
	}

	hospitals, err := s.listHospitals(ctx)
	if err != nil {
		s.logger.Warn("preferred hospital lookup failed", slog.Any("error", err))
		return domain.Hospital{}, false
	}
	return geo.FindPreferredHospital(origin, hospitals, geo.DefaultPreferredRadiusKm)
}

func (s *DispatchEngine) listHospitals(ctx context.Context) ([]domain.Hospital, error) {
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

// RespondAsHospital commits a hospital-axis transition. On accept the
// inventory reservation happens first and gates the transition: a failed
// reservation leaves the alert pending. If the transition loses the race to
// another responder the reserved unit is released.
func (s *DispatchEngine) RespondAsHospital(ctx context.Context, req domain.HospitalResponseRequest) (domain.RespondResult, error) {
	const op = "dispatch.RespondAsHospital"

	alert, err := s.alerts.Get(ctx, req.AlertID)
	if err != nil {
		return domain.RespondResult{}, err
	}
	if alert.Status != domain.AlertPending {
		return domain.RespondResult{}, e.Wrap(op, e.ErrAlreadyResolved)
	}
	hospital, err := s.users.GetHospital(ctx, req.HospitalID)
	if err != nil {
		return domain.RespondResult{}, err
	}

	var status domain.AlertStatus
	switch req.Action {
	case domain.ActionAccept:
		status = domain.AlertAccepted

		newCount, err := s.inventory.Reserve(ctx, req.HospitalID, alert.BloodType)
		if err != nil {
			if errors.Is(err, e.ErrInsufficientStock) {
				// A racing accept for the same alert may have taken the last
				// unit and resolved it; report the resolution, not the stock.
				if current, getErr := s.alerts.Get(ctx, alert.ID); getErr == nil && current.Status != domain.AlertPending {
					return domain.RespondResult{}, e.Wrap(op, e.ErrAlreadyResolved)
				}
				s.logger.Warn("accept aborted, no stock",
					slog.String("alert_id", alert.ID.String()),
					slog.String("hospital_id", req.HospitalID.String()),
					slog.String("blood_type", string(alert.BloodType)),
				)
			}
			return domain.RespondResult{}, err
		}

		if err := s.alerts.TransitionHospital(ctx, alert.ID, status, req.HospitalID); err != nil {
			// Lost the per-alert race after reserving: give the unit back.
			if errors.Is(err, e.ErrAlreadyResolved) {
				if relErr := s.inventory.Release(ctx, req.HospitalID, alert.BloodType); relErr != nil {
					s.logger.Error("release after lost race failed",
						slog.String("alert_id", alert.ID.String()),
						slog.Any("error", relErr),
					)
				}
			}
			return domain.RespondResult{}, err
		}

		s.logger.Info("sos accepted by hospital",
			slog.String("alert_id", alert.ID.String()),
			slog.String("hospital_id", req.HospitalID.String()),
			slog.Int("stock_left", newCount),
		)

	case domain.ActionDecline:
		status = domain.AlertDeclined
		if err := s.alerts.TransitionHospital(ctx, alert.ID, status, req.HospitalID); err != nil {
			return domain.RespondResult{}, err
		}
		s.logger.Info("sos declined by hospital",
			slog.String("alert_id", alert.ID.String()),
			slog.String("hospital_id", req.HospitalID.String()),
		)

	default:
		return domain.RespondResult{}, e.Wrap(op, e.ErrInvalidInput)
	}

	warning := s.notifyRequester(ctx, alert, hospitalResponseMail(alert, hospital.Name, status))
	return domain.RespondResult{Warning: warning}, nil
}

// RespondAsDonor commits a donor-axis transition. Availability is a side
// effect of the response, not a gate on it.
func (s *DispatchEngine) RespondAsDonor(ctx context.Context, req domain.DonorResponseRequest) (domain.RespondResult, error) {
	const op = "dispatch.RespondAsDonor"

	alert, err := s.alerts.Get(ctx, req.AlertID)
	if err != nil {
		return domain.RespondResult{}, err
	}
	if alert.DonorStatus != domain.AlertPending {
		return domain.RespondResult{}, e.Wrap(op, e.ErrAlreadyResolved)
	}
	donor, err := s.users.GetDonor(ctx, req.DonorID)
	if err != nil {
		return domain.RespondResult{}, err
	}

	var status domain.AlertStatus
	var availability domain.DonorAvailability
	switch req.Action {
	case domain.ActionAccept:
		status = domain.AlertAccepted
		availability = domain.DonorPending
	case domain.ActionDecline:
		status = domain.AlertDeclined
		availability = domain.DonorAvailable
	default:
		return domain.RespondResult{}, e.Wrap(op, e.ErrInvalidInput)
	}

	if err := s.alerts.TransitionDonor(ctx, alert.ID, status, req.DonorID); err != nil {
		return domain.RespondResult{}, err
	}

	var warnings []string
	if err := s.users.SetDonorAvailability(ctx, req.DonorID, availability); err != nil {
		s.logger.Error("set donor availability failed",
			slog.String("donor_id", req.DonorID.String()),
			slog.Any("error", err),
		)
		warnings = append(warnings, "response recorded, but donor availability could not be updated")
	}

	s.logger.Info("donor responded",
		slog.String("alert_id", alert.ID.String()),
		slog.String("donor_id", req.DonorID.String()),
		slog.String("status", string(status)),
	)

	if w := s.notifyRequester(ctx, alert, donorResponseMail(alert, donor.Name, status)); w != "" {
		warnings = append(warnings, w)
	}
	return domain.RespondResult{Warning: strings.Join(warnings, "; ")}, nil
}

// notifyRequester enqueues the outbound mail best-effort. A failure is
// reported as a soft warning on the already-committed transition.
func (s *DispatchEngine) notifyRequester(ctx context.Context, alert *domain.SOSAlert, mail mailContent) string {
	requester, err := s.users.GetRequester(ctx, alert.RequesterID)
	if err != nil || requester.Email == "" {
		return ""
	}

	payload := domain.NotificationPayload{
		Recipient: requester.Email,
		Subject:   mail.subject,
		Body:      mail.render(requester.Name),
		QueuedAt:  time.Now().UTC(),
	}
	if err := s.queue.Enqueue(ctx, payload); err != nil {
		s.logger.Error("notification enqueue failed",
			slog.String("alert_id", alert.ID.String()),
			slog.Any("error", err),
		)
		return "response recorded, but the notification could not be sent"
	}
	return ""
}

func parseLocation(latStr, lngStr string) *domain.Location {
	if latStr == "" || lngStr == "" {
		return nil
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil
	}
	loc := domain.Location{Lat: lat, Lng: lng}
	if !loc.Valid() {
		return nil
	}
	return &loc
}
