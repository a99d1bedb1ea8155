// Package geo contains the pure matching primitives: great-circle distance,
// hospital ranking and donor eligibility. No state, no I/O.
package geo

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/domain"
)

// DefaultPreferredRadiusKm bounds the preferred-hospital search at alert
// submission. A hospital at exactly the boundary still qualifies.
const DefaultPreferredRadiusKm = 10.0

// DistanceKm is the haversine great-circle distance between two points.
func DistanceKm(a, b domain.Location) float64 {
	const R = 6371.0 // Earth radius in km

	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return R * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

type RankedHospital struct {
	Hospital   domain.Hospital
	DistanceKm float64
}

// RankHospitalsByDistance orders hospitals ascending by distance from origin.
// The sort is stable so equidistant hospitals keep their input order.
func RankHospitalsByDistance(origin domain.Location, hospitals []domain.Hospital) []RankedHospital {
	ranked := make([]RankedHospital, 0, len(hospitals))
	for _, h := range hospitals {
		ranked = append(ranked, RankedHospital{
			Hospital:   h,
			DistanceKm: DistanceKm(origin, h.Location),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})
	return ranked
}

// FindPreferredHospital returns the nearest hospital within maxRadiusKm of
// origin, or false when none qualifies.
func FindPreferredHospital(origin domain.Location, hospitals []domain.Hospital, maxRadiusKm float64) (domain.Hospital, bool) {
	if maxRadiusKm <= 0 {
		maxRadiusKm = DefaultPreferredRadiusKm
	}
	ranked := RankHospitalsByDistance(origin, hospitals)
	if len(ranked) == 0 || ranked[0].DistanceKm > maxRadiusKm {
		return domain.Hospital{}, false
	}
	return ranked[0].Hospital, true
}

// EligibleDonors filters donors matching the requested group that are
// currently available. When responderID names the donor who already answered
// this alert, that donor is pinned to the front of the list even if no
// longer available, so the requester can still see who responded.
func EligibleDonors(bloodType domain.BloodType, donors []domain.Donor, responderID *uuid.UUID) []domain.Donor {
	eligible := make([]domain.Donor, 0, len(donors))
	for _, d := range donors {
		if d.BloodType == bloodType && d.Availability == domain.DonorAvailable {
			eligible = append(eligible, d)
		}
	}

	if responderID == nil {
		return eligible
	}
	for _, d := range eligible {
		if d.ID == *responderID {
			return eligible
		}
	}
	for _, d := range donors {
		if d.ID == *responderID {
			return append([]domain.Donor{d}, eligible...)
		}
	}
	return eligible
}
