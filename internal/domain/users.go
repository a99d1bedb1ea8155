package domain

import (
	"time"

	"github.com/google/uuid"
)

type Hospital struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Address  string    `json:"address"`
	Location Location  `json:"location"`
}

type DonorAvailability string

const (
	DonorAvailable DonorAvailability = "available"
	DonorPending   DonorAvailability = "pending"
)

type Donor struct {
	ID               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Location         Location          `json:"location"`
	BloodType        BloodType         `json:"blood_type,omitempty"` // optional, empty when unset
	Availability     DonorAvailability `json:"availability"`
	LastDonationDate *time.Time        `json:"last_donation_date,omitempty"`
}

type Requester struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Location Location  `json:"location"`
}
