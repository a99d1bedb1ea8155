package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/domain"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/pkg/e"
)

type AlertRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAlertRepo(pool *pgxpool.Pool, logger *slog.Logger) *AlertRepo {
	return &AlertRepo{pool: pool, logger: logger}
}

const alertColumns = `
	id, requester_id, patient_name, blood_type, note, lat, lng,
	status, responder_id, preferred_hospital_id, preferred_hospital_name,
	donor_status, donor_responder_id, feedback, created_at
`

func (p *AlertRepo) Create(ctx context.Context, alert *domain.SOSAlert) error {
	const op = "postgres.Alert.Create"

	const query = `
		INSERT INTO sos_alerts (
			id, requester_id, patient_name, blood_type, note, lat, lng,
			status, responder_id, preferred_hospital_id, preferred_hospital_name,
			donor_status, donor_responder_id, feedback, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now().UTC()
	}
	if alert.Status == "" {
		alert.Status = domain.AlertPending
	}
	if alert.DonorStatus == "" {
		alert.DonorStatus = domain.AlertPending
	}

	var lat, lng *float64
	if alert.Location != nil {
		lat, lng = &alert.Location.Lat, &alert.Location.Lng
	}

	_, err := p.pool.Exec(ctx, query,
		alert.ID,
		alert.RequesterID,
		alert.PatientName,
		alert.BloodType,
		alert.Note,
		lat,
		lng,
		alert.Status,
		alert.Responder,
		alert.PreferredHospital,
		alert.PreferredHospitalName,
		alert.DonorStatus,
		alert.DonorResponder,
		alert.Feedback,
		alert.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *AlertRepo) Get(ctx context.Context, id uuid.UUID) (*domain.SOSAlert, error) {
	const op = "postgres.Alert.Get"

	query := `SELECT ` + alertColumns + ` FROM sos_alerts WHERE id = $1`

	alert, err := scanAlert(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return alert, nil
}

// TransitionHospital is the hospital-axis compare-and-set: the row only
// changes while still pending, so concurrent responders get exactly one
// winner.
func (p *AlertRepo) TransitionHospital(ctx context.Context, alertID uuid.UUID, status domain.AlertStatus, responderID uuid.UUID) error {
	const op = "postgres.Alert.TransitionHospital"

	const query = `
		UPDATE sos_alerts
		SET status = $2, responder_id = $3
		WHERE id = $1 AND status = 'pending'
	`

	cmd, err := p.pool.Exec(ctx, query, alertID, status, responderID)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", alertID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return p.resolveMiss(ctx, op, alertID)
	}

	return nil
}

// TransitionDonor is the donor-axis compare-and-set, independent of the
// hospital axis.
func (p *AlertRepo) TransitionDonor(ctx context.Context, alertID uuid.UUID, status domain.AlertStatus, donorID uuid.UUID) error {
	const op = "postgres.Alert.TransitionDonor"

	const query = `
		UPDATE sos_alerts
		SET donor_status = $2, donor_responder_id = $3
		WHERE id = $1 AND donor_status = 'pending'
	`

	cmd, err := p.pool.Exec(ctx, query, alertID, status, donorID)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", alertID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return p.resolveMiss(ctx, op, alertID)
	}

	return nil
}

// resolveMiss disambiguates a zero-row conditional update: either the alert
// does not exist, or its axis already left pending.
func (p *AlertRepo) resolveMiss(ctx context.Context, op string, alertID uuid.UUID) error {
	var exists bool
	err := p.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM sos_alerts WHERE id = $1)`, alertID).Scan(&exists)
	if err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if !exists {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, e.ErrAlreadyResolved)
}

// ListPendingForHospital returns broadcast alerts plus those preferring this
// hospital; a set preference hides the alert from everyone else.
func (p *AlertRepo) ListPendingForHospital(ctx context.Context, hospitalID uuid.UUID) ([]*domain.SOSAlert, error) {
	const op = "postgres.Alert.ListPendingForHospital"

	query := `
		SELECT ` + alertColumns + `
		FROM sos_alerts
		WHERE status = 'pending'
		  AND (preferred_hospital_id IS NULL OR preferred_hospital_id = $1)
		ORDER BY created_at DESC
	`

	return p.list(ctx, op, query, hospitalID)
}

func (p *AlertRepo) ListForRequester(ctx context.Context, requesterID uuid.UUID) ([]*domain.SOSAlert, error) {
	const op = "postgres.Alert.ListForRequester"

	query := `
		SELECT ` + alertColumns + `
		FROM sos_alerts
		WHERE requester_id = $1
		ORDER BY created_at DESC
	`

	return p.list(ctx, op, query, requesterID)
}

func (p *AlertRepo) ListAll(ctx context.Context) ([]*domain.SOSAlert, error) {
	const op = "postgres.Alert.ListAll"

	query := `
		SELECT ` + alertColumns + `
		FROM sos_alerts
		ORDER BY created_at DESC
	`

	return p.list(ctx, op, query)
}

func (p *AlertRepo) list(ctx context.Context, op, query string, args ...any) ([]*domain.SOSAlert, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var alerts []*domain.SOSAlert
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return alerts, nil
}

func scanAlert(row pgx.Row) (*domain.SOSAlert, error) {
	var alert domain.SOSAlert
	var lat, lng *float64

	err := row.Scan(
		&alert.ID,
		&alert.RequesterID,
		&alert.PatientName,
		&alert.BloodType,
		&alert.Note,
		&lat,
		&lng,
		&alert.Status,
		&alert.Responder,
		&alert.PreferredHospital,
		&alert.PreferredHospitalName,
		&alert.DonorStatus,
		&alert.DonorResponder,
		&alert.Feedback,
		&alert.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lat != nil && lng != nil {
		alert.Location = &domain.Location{Lat: *lat, Lng: *lng}
	}
	return &alert, nil
}
