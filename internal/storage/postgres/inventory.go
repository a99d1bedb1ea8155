package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/domain"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/pkg/e"
)

type InventoryRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewInventoryRepo(pool *pgxpool.Pool, logger *slog.Logger) *InventoryRepo {
	return &InventoryRepo{pool: pool, logger: logger}
}

// counterColumn maps a blood group to its counter column. Exhaustive over
// the enum; the result is interpolated into SQL and never caller-supplied.
func counterColumn(t domain.BloodType) (string, error) {
	switch t {
	case domain.BloodAPos:
		return "a_positive", nil
	case domain.BloodANeg:
		return "a_negative", nil
	case domain.BloodBPos:
		return "b_positive", nil
	case domain.BloodBNeg:
		return "b_negative", nil
	case domain.BloodABPos:
		return "ab_positive", nil
	case domain.BloodABNeg:
		return "ab_negative", nil
	case domain.BloodOPos:
		return "o_positive", nil
	case domain.BloodONeg:
		return "o_negative", nil
	}
	return "", e.ErrInvalidBloodType
}

// Reserve decrements one unit if and only if the counter is positive. The
// conditional single-row update is the linearization point: concurrent
// reserves against a stock of one yield exactly one success.
func (p *InventoryRepo) Reserve(ctx context.Context, hospitalID uuid.UUID, t domain.BloodType) (int, error) {
	const op = "postgres.Inventory.Reserve"

	col, err := counterColumn(t)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	query := fmt.Sprintf(`
		UPDATE blood_inventory
		SET %[1]s = %[1]s - 1, updated_at = now()
		WHERE hospital_id = $1 AND %[1]s > 0
		RETURNING %[1]s
	`, col)

	var newCount int
	err = p.pool.QueryRow(ctx, query, hospitalID).Scan(&newCount)
	if err == nil {
		return newCount, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	var exists bool
	if chkErr := p.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM blood_inventory WHERE hospital_id = $1)`, hospitalID,
	).Scan(&exists); chkErr != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", chkErr))
		return 0, e.WrapError(ctx, op, chkErr)
	}
	if !exists {
		return 0, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return 0, fmt.Errorf("%s: %w", op, e.ErrInsufficientStock)
}

// Release gives one unit back, compensating an accept that lost the
// per-alert race after reserving.
func (p *InventoryRepo) Release(ctx context.Context, hospitalID uuid.UUID, t domain.BloodType) error {
	const op = "postgres.Inventory.Release"

	col, err := counterColumn(t)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := fmt.Sprintf(`
		UPDATE blood_inventory
		SET %[1]s = %[1]s + 1, updated_at = now()
		WHERE hospital_id = $1
	`, col)

	cmd, err := p.pool.Exec(ctx, query, hospitalID)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *InventoryRepo) SetCounts(ctx context.Context, hospitalID uuid.UUID, counts domain.BloodCounts) error {
	const op = "postgres.Inventory.SetCounts"

	if counts.Negative() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCount)
	}

	const query = `
		INSERT INTO blood_inventory (
			hospital_id, a_positive, a_negative, b_positive, b_negative,
			ab_positive, ab_negative, o_positive, o_negative, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		ON CONFLICT (hospital_id) DO UPDATE SET
			a_positive  = EXCLUDED.a_positive,
			a_negative  = EXCLUDED.a_negative,
			b_positive  = EXCLUDED.b_positive,
			b_negative  = EXCLUDED.b_negative,
			ab_positive = EXCLUDED.ab_positive,
			ab_negative = EXCLUDED.ab_negative,
			o_positive  = EXCLUDED.o_positive,
			o_negative  = EXCLUDED.o_negative,
			updated_at  = now()
	`

	_, err := p.pool.Exec(ctx, query,
		hospitalID,
		counts.APositive, counts.ANegative,
		counts.BPositive, counts.BNegative,
		counts.ABPositive, counts.ABNegative,
		counts.OPositive, counts.ONegative,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// GetOrCreate returns the hospital's record, zero-initializing it on first
// access. Idempotent.
func (p *InventoryRepo) GetOrCreate(ctx context.Context, hospitalID uuid.UUID) (*domain.InventoryRecord, error) {
	const op = "postgres.Inventory.GetOrCreate"

	const insert = `
		INSERT INTO blood_inventory (hospital_id, updated_at)
		VALUES ($1, now())
		ON CONFLICT (hospital_id) DO NOTHING
	`
	if _, err := p.pool.Exec(ctx, insert, hospitalID); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	const query = `
		SELECT hospital_id, a_positive, a_negative, b_positive, b_negative,
		       ab_positive, ab_negative, o_positive, o_negative, updated_at
		FROM blood_inventory
		WHERE hospital_id = $1
	`

	var rec domain.InventoryRecord
	err := p.pool.QueryRow(ctx, query, hospitalID).Scan(
		&rec.HospitalID,
		&rec.APositive, &rec.ANegative,
		&rec.BPositive, &rec.BNegative,
		&rec.ABPositive, &rec.ABNegative,
		&rec.OPositive, &rec.ONegative,
		&rec.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return &rec, nil
}
