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

// UserRepo serves the three roles sharing the users table: requesters,
// hospitals and donors. The role column discriminates.
type UserRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewUserRepo(pool *pgxpool.Pool, logger *slog.Logger) *UserRepo {
	return &UserRepo{pool: pool, logger: logger}
}

func (p *UserRepo) GetRequester(ctx context.Context, id uuid.UUID) (*domain.Requester, error) {
	const op = "postgres.User.GetRequester"

	const query = `
		SELECT id, name, email, lat, lng
		FROM users
		WHERE id = $1 AND role = 'user'
	`

	var r domain.Requester
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&r.ID, &r.Name, &r.Email, &r.Location.Lat, &r.Location.Lng,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &r, nil
}

func (p *UserRepo) GetHospital(ctx context.Context, id uuid.UUID) (*domain.Hospital, error) {
	const op = "postgres.User.GetHospital"

	const query = `
		SELECT id, name, email, COALESCE(address, ''), lat, lng
		FROM users
		WHERE id = $1 AND role = 'hospital'
	`

	var h domain.Hospital
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&h.ID, &h.Name, &h.Email, &h.Address, &h.Location.Lat, &h.Location.Lng,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &h, nil
}

func (p *UserRepo) ListHospitals(ctx context.Context) ([]domain.Hospital, error) {
	const op = "postgres.User.ListHospitals"

	const query = `
		SELECT id, name, email, COALESCE(address, ''), lat, lng
		FROM users
		WHERE role = 'hospital'
		ORDER BY created_at
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	hospitals := make([]domain.Hospital, 0, 16)
	for rows.Next() {
		var h domain.Hospital
		if err := rows.Scan(&h.ID, &h.Name, &h.Email, &h.Address, &h.Location.Lat, &h.Location.Lng); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		hospitals = append(hospitals, h)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return hospitals, nil
}

func (p *UserRepo) CreateHospital(ctx context.Context, h *domain.Hospital) error {
	const op = "postgres.User.CreateHospital"

	const query = `
		INSERT INTO users (id, role, name, email, address, lat, lng, created_at)
		VALUES ($1, 'hospital', $2, $3, $4, $5, $6, $7)
	`

	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}

	_, err := p.pool.Exec(ctx, query,
		h.ID, h.Name, h.Email, h.Address, h.Location.Lat, h.Location.Lng, time.Now().UTC(),
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *UserRepo) UpdateHospital(ctx context.Context, h *domain.Hospital) error {
	const op = "postgres.User.UpdateHospital"

	const query = `
		UPDATE users
		SET name = $2, email = $3, address = $4, lat = $5, lng = $6
		WHERE id = $1 AND role = 'hospital'
	`

	cmd, err := p.pool.Exec(ctx, query, h.ID, h.Name, h.Email, h.Address, h.Location.Lat, h.Location.Lng)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", h.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// DeleteHospital removes the account; the inventory record and alert
// references cascade through the schema's foreign keys.
func (p *UserRepo) DeleteHospital(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.User.DeleteHospital"

	const query = `DELETE FROM users WHERE id = $1 AND role = 'hospital'`

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *UserRepo) GetDonor(ctx context.Context, id uuid.UUID) (*domain.Donor, error) {
	const op = "postgres.User.GetDonor"

	const query = `
		SELECT id, name, email, lat, lng,
		       COALESCE(blood_group, ''), donor_availability, last_donation_date
		FROM users
		WHERE id = $1 AND role = 'donor'
	`

	var d domain.Donor
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Name, &d.Email, &d.Location.Lat, &d.Location.Lng,
		&d.BloodType, &d.Availability, &d.LastDonationDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &d, nil
}

func (p *UserRepo) ListDonors(ctx context.Context) ([]domain.Donor, error) {
	const op = "postgres.User.ListDonors"

	const query = `
		SELECT id, name, email, lat, lng,
		       COALESCE(blood_group, ''), donor_availability, last_donation_date
		FROM users
		WHERE role = 'donor'
		ORDER BY name, created_at
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	donors := make([]domain.Donor, 0, 32)
	for rows.Next() {
		var d domain.Donor
		if err := rows.Scan(
			&d.ID, &d.Name, &d.Email, &d.Location.Lat, &d.Location.Lng,
			&d.BloodType, &d.Availability, &d.LastDonationDate,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		donors = append(donors, d)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return donors, nil
}

func (p *UserRepo) UpdateDonor(ctx context.Context, d *domain.Donor) error {
	const op = "postgres.User.UpdateDonor"

	const query = `
		UPDATE users
		SET blood_group = NULLIF($2, ''), donor_availability = $3,
		    lat = $4, lng = $5, last_donation_date = $6
		WHERE id = $1 AND role = 'donor'
	`

	cmd, err := p.pool.Exec(ctx, query,
		d.ID, string(d.BloodType), d.Availability, d.Location.Lat, d.Location.Lng, d.LastDonationDate,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", d.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *UserRepo) SetDonorAvailability(ctx context.Context, donorID uuid.UUID, a domain.DonorAvailability) error {
	const op = "postgres.User.SetDonorAvailability"

	const query = `
		UPDATE users
		SET donor_availability = $2
		WHERE id = $1 AND role = 'donor'
	`

	cmd, err := p.pool.Exec(ctx, query, donorID, a)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", donorID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *UserRepo) UpdateLocation(ctx context.Context, userID uuid.UUID, loc domain.Location) error {
	const op = "postgres.User.UpdateLocation"

	const query = `UPDATE users SET lat = $2, lng = $3 WHERE id = $1`

	cmd, err := p.pool.Exec(ctx, query, userID, loc.Lat, loc.Lng)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", userID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}
