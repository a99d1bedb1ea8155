package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/domain"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/pkg/e"
)

// InventoryLedger is the administrative surface over the inventory
// repository: bulk overwrites and reads. Reservation goes through the
// DispatchEngine only.
type InventoryLedger struct {
	repo   InventoryRepository
	logger *slog.Logger
}

func NewInventoryLedger(repo InventoryRepository, logger *slog.Logger) *InventoryLedger {
	return &InventoryLedger{repo: repo, logger: logger}
}

func (s *InventoryLedger) Get(ctx context.Context, hospitalID uuid.UUID) (*domain.InventoryRecord, error) {
	return s.repo.GetOrCreate(ctx, hospitalID)
}

func (s *InventoryLedger) SetCounts(ctx context.Context, hospitalID uuid.UUID, counts domain.BloodCounts) error {
	const op = "inventory.SetCounts"

	if counts.Negative() {
		return e.Wrap(op, e.ErrInvalidCount)
	}
	if err := s.repo.SetCounts(ctx, hospitalID, counts); err != nil {
		return err
	}
	s.logger.Info("inventory overwritten", slog.String("hospital_id", hospitalID.String()))
	return nil
}
