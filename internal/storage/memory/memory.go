// Package memory provides mutex-guarded in-memory implementations of the
// repositories, used by tests and local development. The store mutex is the
// linearization point for the compare-and-set operations.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/domain"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/pkg/e"
)

type Store struct {
	mu          sync.RWMutex
	alertsByID  map[uuid.UUID]*domain.SOSAlert
	inventories map[uuid.UUID]*domain.InventoryRecord
	requesters  map[uuid.UUID]*domain.Requester
	hospitals   map[uuid.UUID]*domain.Hospital
	donors      map[uuid.UUID]*domain.Donor
	hospitalSeq []uuid.UUID // insertion order for deterministic listings
}

func NewStore() *Store {
	return &Store{
		alertsByID:  make(map[uuid.UUID]*domain.SOSAlert),
		inventories: make(map[uuid.UUID]*domain.InventoryRecord),
		requesters:  make(map[uuid.UUID]*domain.Requester),
		hospitals:   make(map[uuid.UUID]*domain.Hospital),
		donors:      make(map[uuid.UUID]*domain.Donor),
	}
}

// --- AlertRepository ---

func (m *Store) Create(ctx context.Context, alert *domain.SOSAlert) error {
	m.mu.Lock()
	defer m.mu.Unlock()

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

	cp := *alert
	m.alertsByID[alert.ID] = &cp
	return nil
}

func (m *Store) Get(ctx context.Context, id uuid.UUID) (*domain.SOSAlert, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.alertsByID[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *Store) TransitionHospital(ctx context.Context, alertID uuid.UUID, status domain.AlertStatus, responderID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.alertsByID[alertID]
	if !ok {
		return e.ErrNotFound
	}
	if a.Status != domain.AlertPending {
		return e.ErrAlreadyResolved
	}
	a.Status = status
	id := responderID
	a.Responder = &id
	return nil
}

func (m *Store) TransitionDonor(ctx context.Context, alertID uuid.UUID, status domain.AlertStatus, donorID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.alertsByID[alertID]
	if !ok {
		return e.ErrNotFound
	}
	if a.DonorStatus != domain.AlertPending {
		return e.ErrAlreadyResolved
	}
	a.DonorStatus = status
	id := donorID
	a.DonorResponder = &id
	return nil
}

func (m *Store) ListPendingForHospital(ctx context.Context, hospitalID uuid.UUID) ([]*domain.SOSAlert, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.SOSAlert, 0)
	for _, a := range m.alertsByID {
		if a.Status != domain.AlertPending {
			continue
		}
		if a.PreferredHospital != nil && *a.PreferredHospital != hospitalID {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	sortAlertsNewestFirst(out)
	return out, nil
}

func (m *Store) ListForRequester(ctx context.Context, requesterID uuid.UUID) ([]*domain.SOSAlert, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.SOSAlert, 0)
	for _, a := range m.alertsByID {
		if a.RequesterID != requesterID {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	sortAlertsNewestFirst(out)
	return out, nil
}

func (m *Store) ListAll(ctx context.Context) ([]*domain.SOSAlert, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.SOSAlert, 0, len(m.alertsByID))
	for _, a := range m.alertsByID {
		cp := *a
		out = append(out, &cp)
	}
	sortAlertsNewestFirst(out)
	return out, nil
}

func sortAlertsNewestFirst(alerts []*domain.SOSAlert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].CreatedAt.After(alerts[j].CreatedAt)
	})
}

// --- InventoryRepository ---

func (m *Store) Reserve(ctx context.Context, hospitalID uuid.UUID, t domain.BloodType) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.inventories[hospitalID]
	if !ok {
		return 0, e.ErrNotFound
	}
	count := rec.Count(t)
	if count <= 0 {
		return 0, e.ErrInsufficientStock
	}
	rec.SetCount(t, count-1)
	rec.UpdatedAt = time.Now().UTC()
	return count - 1, nil
}

func (m *Store) Release(ctx context.Context, hospitalID uuid.UUID, t domain.BloodType) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.inventories[hospitalID]
	if !ok {
		return e.ErrNotFound
	}
	rec.SetCount(t, rec.Count(t)+1)
	rec.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *Store) SetCounts(ctx context.Context, hospitalID uuid.UUID, counts domain.BloodCounts) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if counts.Negative() {
		return e.ErrInvalidCount
	}

	rec, ok := m.inventories[hospitalID]
	if !ok {
		rec = &domain.InventoryRecord{HospitalID: hospitalID}
		m.inventories[hospitalID] = rec
	}
	rec.APositive = counts.APositive
	rec.ANegative = counts.ANegative
	rec.BPositive = counts.BPositive
	rec.BNegative = counts.BNegative
	rec.ABPositive = counts.ABPositive
	rec.ABNegative = counts.ABNegative
	rec.OPositive = counts.OPositive
	rec.ONegative = counts.ONegative
	rec.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *Store) GetOrCreate(ctx context.Context, hospitalID uuid.UUID) (*domain.InventoryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.inventories[hospitalID]
	if !ok {
		rec = &domain.InventoryRecord{HospitalID: hospitalID, UpdatedAt: time.Now().UTC()}
		m.inventories[hospitalID] = rec
	}
	cp := *rec
	return &cp, nil
}

// --- UserRepository ---

func (m *Store) AddRequester(r domain.Requester) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := r
	m.requesters[r.ID] = &cp
}

func (m *Store) AddHospital(h domain.Hospital) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := h
	m.hospitals[h.ID] = &cp
	m.hospitalSeq = append(m.hospitalSeq, h.ID)
}

func (m *Store) AddDonor(d domain.Donor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := d
	m.donors[d.ID] = &cp
}

func (m *Store) GetRequester(ctx context.Context, id uuid.UUID) (*domain.Requester, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.requesters[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *Store) GetHospital(ctx context.Context, id uuid.UUID) (*domain.Hospital, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	h, ok := m.hospitals[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	cp := *h
	return &cp, nil
}

func (m *Store) ListHospitals(ctx context.Context) ([]domain.Hospital, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Hospital, 0, len(m.hospitalSeq))
	for _, id := range m.hospitalSeq {
		if h, ok := m.hospitals[id]; ok {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (m *Store) CreateHospital(ctx context.Context, h *domain.Hospital) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	cp := *h
	m.hospitals[h.ID] = &cp
	m.hospitalSeq = append(m.hospitalSeq, h.ID)
	return nil
}

func (m *Store) UpdateHospital(ctx context.Context, h *domain.Hospital) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.hospitals[h.ID]; !ok {
		return e.ErrNotFound
	}
	cp := *h
	m.hospitals[h.ID] = &cp
	return nil
}

func (m *Store) DeleteHospital(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.hospitals[id]; !ok {
		return e.ErrNotFound
	}
	delete(m.hospitals, id)
	delete(m.inventories, id)
	for i, hid := range m.hospitalSeq {
		if hid == id {
			m.hospitalSeq = append(m.hospitalSeq[:i], m.hospitalSeq[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Store) GetDonor(ctx context.Context, id uuid.UUID) (*domain.Donor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.donors[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *Store) ListDonors(ctx context.Context) ([]domain.Donor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Donor, 0, len(m.donors))
	for _, d := range m.donors {
		out = append(out, *d)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Store) UpdateDonor(ctx context.Context, d *domain.Donor) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.donors[d.ID]; !ok {
		return e.ErrNotFound
	}
	cp := *d
	m.donors[d.ID] = &cp
	return nil
}

func (m *Store) SetDonorAvailability(ctx context.Context, donorID uuid.UUID, a domain.DonorAvailability) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.donors[donorID]
	if !ok {
		return e.ErrNotFound
	}
	d.Availability = a
	return nil
}

func (m *Store) UpdateLocation(ctx context.Context, userID uuid.UUID, loc domain.Location) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r, ok := m.requesters[userID]; ok {
		r.Location = loc
		return nil
	}
	if h, ok := m.hospitals[userID]; ok {
		h.Location = loc
		return nil
	}
	if d, ok := m.donors[userID]; ok {
		d.Location = loc
		return nil
	}
	return e.ErrNotFound
}
