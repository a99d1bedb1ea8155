package domain

import (
	"time"

	"github.com/google/uuid"
)

type AlertStatus string

const (
	AlertPending  AlertStatus = "pending"
	AlertAccepted AlertStatus = "accepted"
	AlertDeclined AlertStatus = "declined"
)

type ResponseAction string

const (
	ActionAccept  ResponseAction = "accept"
	ActionDecline ResponseAction = "decline"
)

// SOSAlert is the central entity. The request details are immutable after
// creation; only the two response axes, their responders and the feedback
// text mutate. The hospital axis (Status/Responder) and the donor axis
// (DonorStatus/DonorResponder) each move pending -> accepted|declined exactly
// once and are independent of each other.
type SOSAlert struct {
	ID                    uuid.UUID   `json:"id"`
	RequesterID           uuid.UUID   `json:"requester_id"`
	PatientName           string      `json:"patient_name"`
	BloodType             BloodType   `json:"blood_type"`
	Note                  string      `json:"note"`
	Location              *Location   `json:"location,omitempty"`
	Status                AlertStatus `json:"status"`
	Responder             *uuid.UUID  `json:"responder,omitempty"`
	PreferredHospital     *uuid.UUID  `json:"preferred_hospital,omitempty"`
	PreferredHospitalName string      `json:"preferred_hospital_name,omitempty"`
	DonorStatus           AlertStatus `json:"donor_status"`
	DonorResponder        *uuid.UUID  `json:"donor_responder,omitempty"`
	Feedback              string      `json:"feedback,omitempty"`
	CreatedAt             time.Time   `json:"created_at"`
}
