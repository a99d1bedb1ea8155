package domain

import "github.com/google/uuid"

// SubmitAlertRequest carries the raw submission. Latitude/Longitude and
// PreferredHospitalID arrive as strings straight from the client form;
// malformed values degrade to defaults instead of failing the request.
type SubmitAlertRequest struct {
	RequesterID         string `json:"requester_id" validate:"required,uuid"`
	PatientName         string `json:"patient_name"`
	BloodType           string `json:"blood_type" validate:"required,bloodtype"`
	Note                string `json:"note"`
	Latitude            string `json:"latitude"`
	Longitude           string `json:"longitude"`
	PreferredHospitalID string `json:"preferred_hospital_id"`
}

type HospitalResponseRequest struct {
	AlertID    uuid.UUID      `json:"alert_id" validate:"required"`
	HospitalID uuid.UUID      `json:"hospital_id" validate:"required"`
	Action     ResponseAction `json:"action" validate:"required,oneof=accept decline"`
}

type DonorResponseRequest struct {
	AlertID uuid.UUID      `json:"alert_id" validate:"required"`
	DonorID uuid.UUID      `json:"donor_id" validate:"required"`
	Action  ResponseAction `json:"action" validate:"required,oneof=accept decline"`
}

// RespondResult reports a committed transition. Warning carries a soft
// notification-delivery failure; it never turns the result into an error.
type RespondResult struct {
	Warning string `json:"warning,omitempty"`
}

type CreateHospitalRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat" validate:"lat"`
	Lng     float64 `json:"lng" validate:"lng"`
}

type UpdateHospitalRequest struct {
	Name    *string  `json:"name" validate:"omitempty,min=1"`
	Email   *string  `json:"email" validate:"omitempty,email"`
	Address *string  `json:"address"`
	Lat     *float64 `json:"lat" validate:"omitempty,lat"`
	Lng     *float64 `json:"lng" validate:"omitempty,lng"`
}

type UpdateDonorProfileRequest struct {
	BloodType *string  `json:"blood_type" validate:"omitempty,bloodtype"`
	Lat       *float64 `json:"lat" validate:"omitempty,lat"`
	Lng       *float64 `json:"lng" validate:"omitempty,lng"`
}

type UpdateLocationRequest struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

// PendingAlert is a pending SOS annotated with the viewing hospital's
// remaining stock for the requested group.
type PendingAlert struct {
	Alert     *SOSAlert `json:"alert"`
	StockLeft int       `json:"stock_left"`
	CanAccept bool      `json:"can_accept"`
}

type NearbyHospital struct {
	Hospital   Hospital `json:"hospital"`
	DistanceKm float64  `json:"distance_km"`
}
