package domain

import (
	"time"

	"github.com/google/uuid"
)

// InventoryRecord holds the per-hospital unit counters, one per blood group.
// Counters are never negative; mutation goes through the inventory repository.
type InventoryRecord struct {
	HospitalID uuid.UUID `json:"hospital_id"`
	APositive  int       `json:"a_positive"`
	ANegative  int       `json:"a_negative"`
	BPositive  int       `json:"b_positive"`
	BNegative  int       `json:"b_negative"`
	ABPositive int       `json:"ab_positive"`
	ABNegative int       `json:"ab_negative"`
	OPositive  int       `json:"o_positive"`
	ONegative  int       `json:"o_negative"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Count returns the counter for the given blood group.
func (r *InventoryRecord) Count(t BloodType) int {
	switch t {
	case BloodAPos:
		return r.APositive
	case BloodANeg:
		return r.ANegative
	case BloodBPos:
		return r.BPositive
	case BloodBNeg:
		return r.BNegative
	case BloodABPos:
		return r.ABPositive
	case BloodABNeg:
		return r.ABNegative
	case BloodOPos:
		return r.OPositive
	case BloodONeg:
		return r.ONegative
	}
	return 0
}

func (r *InventoryRecord) SetCount(t BloodType, n int) {
	switch t {
	case BloodAPos:
		r.APositive = n
	case BloodANeg:
		r.ANegative = n
	case BloodBPos:
		r.BPositive = n
	case BloodBNeg:
		r.BNegative = n
	case BloodABPos:
		r.ABPositive = n
	case BloodABNeg:
		r.ABNegative = n
	case BloodOPos:
		r.OPositive = n
	case BloodONeg:
		r.ONegative = n
	}
}

// BloodCounts is the administrative bulk-overwrite payload.
type BloodCounts struct {
	APositive  int `json:"a_positive" validate:"min=0"`
	ANegative  int `json:"a_negative" validate:"min=0"`
	BPositive  int `json:"b_positive" validate:"min=0"`
	BNegative  int `json:"b_negative" validate:"min=0"`
	ABPositive int `json:"ab_positive" validate:"min=0"`
	ABNegative int `json:"ab_negative" validate:"min=0"`
	OPositive  int `json:"o_positive" validate:"min=0"`
	ONegative  int `json:"o_negative" validate:"min=0"`
}

func (c BloodCounts) Negative() bool {
	return c.APositive < 0 || c.ANegative < 0 ||
		c.BPositive < 0 || c.BNegative < 0 ||
		c.ABPositive < 0 || c.ABNegative < 0 ||
		c.OPositive < 0 || c.ONegative < 0
}
