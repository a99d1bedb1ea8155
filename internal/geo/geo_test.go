package geo_test

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/domain"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/geo"
)

func loc(lat, lng float64) domain.Location {
	return domain.Location{Lat: lat, Lng: lng}
}

// hospitalAtKm places a hospital roughly km kilometers north of origin.
// One degree of latitude is ~111.195 km on the haversine sphere.
func hospitalAtKm(origin domain.Location, km float64, name string) domain.Hospital {
	return domain.Hospital{
		ID:       uuid.New(),
		Name:     name,
		Location: loc(origin.Lat+km/111.195, origin.Lng),
	}
}

func TestDistanceKm_IdenticalPointsZero(t *testing.T) {
	t.Parallel()

	p := loc(28.6139, 77.2090)
	if d := geo.DistanceKm(p, p); d != 0 {
		t.Fatalf("expected 0, got %v", d)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	t.Parallel()

	a := loc(28.6139, 77.2090)
	b := loc(12.9716, 77.5946)

	ab := geo.DistanceKm(a, b)
	ba := geo.DistanceKm(b, a)
	if ab != ba {
		t.Fatalf("distance not symmetric: %v vs %v", ab, ba)
	}
	if ab <= 0 {
		t.Fatalf("expected positive distance, got %v", ab)
	}
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	t.Parallel()

	// Delhi -> Bengaluru is roughly 1740 km.
	got := geo.DistanceKm(loc(28.6139, 77.2090), loc(12.9716, 77.5946))
	if math.Abs(got-1740) > 20 {
		t.Fatalf("unexpected distance %v", got)
	}
}

func TestRankHospitalsByDistance_Ascending(t *testing.T) {
	t.Parallel()

	origin := loc(28.6139, 77.2090)
	far := hospitalAtKm(origin, 30, "far")
	near := hospitalAtKm(origin, 2, "near")
	mid := hospitalAtKm(origin, 12, "mid")

	ranked := geo.RankHospitalsByDistance(origin, []domain.Hospital{far, near, mid})
	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked, got %d", len(ranked))
	}
	if ranked[0].Hospital.Name != "near" || ranked[1].Hospital.Name != "mid" || ranked[2].Hospital.Name != "far" {
		t.Fatalf("unexpected order: %s %s %s",
			ranked[0].Hospital.Name, ranked[1].Hospital.Name, ranked[2].Hospital.Name)
	}
	if ranked[0].DistanceKm > ranked[1].DistanceKm || ranked[1].DistanceKm > ranked[2].DistanceKm {
		t.Fatalf("distances not ascending: %+v", ranked)
	}
}

func TestRankHospitalsByDistance_StableOnTies(t *testing.T) {
	t.Parallel()

	origin := loc(28.6139, 77.2090)
	same := loc(origin.Lat+0.01, origin.Lng)

	first := domain.Hospital{ID: uuid.New(), Name: "first", Location: same}
	second := domain.Hospital{ID: uuid.New(), Name: "second", Location: same}

	ranked := geo.RankHospitalsByDistance(origin, []domain.Hospital{first, second})
	if ranked[0].Hospital.Name != "first" || ranked[1].Hospital.Name != "second" {
		t.Fatalf("tie not broken by insertion order: %s, %s",
			ranked[0].Hospital.Name, ranked[1].Hospital.Name)
	}
}

func TestFindPreferredHospital_RadiusFilter(t *testing.T) {
	t.Parallel()

	origin := loc(28.6139, 77.2090)

	cases := []struct {
		name     string
		hospital domain.Hospital
		want     bool
	}{
		{"inside at 9.9km", hospitalAtKm(origin, 9.9, "h"), true},
		{"outside at 10.1km", hospitalAtKm(origin, 10.1, "h"), false},
		{"boundary at 10.0km qualifies", hospitalAtKm(origin, 10.0, "h"), true},
		{"far away at 15km", hospitalAtKm(origin, 15, "h"), false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, ok := geo.FindPreferredHospital(origin, []domain.Hospital{tc.hospital}, 10)
			if ok != tc.want {
				t.Fatalf("want qualified=%v got %v", tc.want, ok)
			}
		})
	}
}

func TestFindPreferredHospital_PicksNearest(t *testing.T) {
	t.Parallel()

	origin := loc(28.6139, 77.2090)
	near := hospitalAtKm(origin, 3, "near")
	nearer := hospitalAtKm(origin, 1, "nearer")

	got, ok := geo.FindPreferredHospital(origin, []domain.Hospital{near, nearer}, 10)
	if !ok {
		t.Fatal("expected a preferred hospital")
	}
	if got.Name != "nearer" {
		t.Fatalf("expected nearest hospital, got %q", got.Name)
	}
}

func TestFindPreferredHospital_Empty(t *testing.T) {
	t.Parallel()

	if _, ok := geo.FindPreferredHospital(loc(0, 0), nil, 10); ok {
		t.Fatal("expected no preferred hospital for empty candidates")
	}
}

func TestEligibleDonors_FiltersTypeAndAvailability(t *testing.T) {
	t.Parallel()

	match := domain.Donor{ID: uuid.New(), Name: "match", BloodType: domain.BloodOPos, Availability: domain.DonorAvailable}
	wrongType := domain.Donor{ID: uuid.New(), Name: "wrong-type", BloodType: domain.BloodANeg, Availability: domain.DonorAvailable}
	busy := domain.Donor{ID: uuid.New(), Name: "busy", BloodType: domain.BloodOPos, Availability: domain.DonorPending}
	unset := domain.Donor{ID: uuid.New(), Name: "unset", Availability: domain.DonorAvailable}

	got := geo.EligibleDonors(domain.BloodOPos, []domain.Donor{match, wrongType, busy, unset}, nil)
	if len(got) != 1 || got[0].Name != "match" {
		t.Fatalf("unexpected eligible donors: %+v", got)
	}
}

func TestEligibleDonors_PinsResponder(t *testing.T) {
	t.Parallel()

	responder := domain.Donor{ID: uuid.New(), Name: "responder", BloodType: domain.BloodOPos, Availability: domain.DonorPending}
	available := domain.Donor{ID: uuid.New(), Name: "available", BloodType: domain.BloodOPos, Availability: domain.DonorAvailable}

	got := geo.EligibleDonors(domain.BloodOPos, []domain.Donor{available, responder}, &responder.ID)
	if len(got) != 2 {
		t.Fatalf("expected 2 donors, got %d", len(got))
	}
	if got[0].ID != responder.ID {
		t.Fatalf("responder not pinned first: %+v", got)
	}
}

func TestEligibleDonors_ResponderNotDuplicated(t *testing.T) {
	t.Parallel()

	responder := domain.Donor{ID: uuid.New(), Name: "responder", BloodType: domain.BloodOPos, Availability: domain.DonorAvailable}

	got := geo.EligibleDonors(domain.BloodOPos, []domain.Donor{responder}, &responder.ID)
	if len(got) != 1 {
		t.Fatalf("responder duplicated: %+v", got)
	}
}
