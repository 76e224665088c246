package repository

import (
	"context"
	"sort"
	"sync"

	domain "github.com/docpoint/clinic-scheduler/internal/domain/schedule"
	"github.com/docpoint/clinic-scheduler/internal/models"
)

// MemoryLedger implements schedule.Ledger and schedule.Providers in
// memory. Used by the test suite and by store-less runs.
type MemoryLedger struct {
	mu           sync.RWMutex
	appointments map[string]models.Appointment
	order        []string
	providers    map[uint]models.Provider
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		appointments: make(map[string]models.Appointment),
		providers:    make(map[uint]models.Provider),
	}
}

func (r *MemoryLedger) AddProvider(p models.Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.ID] = p
}

// --------------------------------------------------
// Provider
// --------------------------------------------------

func (r *MemoryLedger) GetProvider(
	_ context.Context,
	id uint,
) (*models.Provider, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[id]
	if !ok || !p.Active {
		return nil, domain.ErrProviderNotFound
	}
	return &p, nil
}

func (r *MemoryLedger) ListProviders(
	_ context.Context,
) ([]models.Provider, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Provider, 0, len(r.providers))
	for _, p := range r.providers {
		if p.Active {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// --------------------------------------------------
// Ledger
// --------------------------------------------------

func (r *MemoryLedger) Append(
	_ context.Context,
	ap *models.Appointment,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	if ap.Version == 0 {
		ap.Version = 1
	}
	r.appointments[ap.ID] = *ap
	r.order = append(r.order, ap.ID)
	return nil
}

func (r *MemoryLedger) Get(
	_ context.Context,
	id string,
) (*models.Appointment, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ap, nil
}

func (r *MemoryLedger) Update(
	_ context.Context,
	ap *models.Appointment,
	expectedVersion int,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.appointments[ap.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.Version != expectedVersion {
		return domain.ErrInvalidState
	}

	ap.Version = expectedVersion + 1
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *MemoryLedger) ListByProviderDate(
	_ context.Context,
	providerID uint,
	slotDate string,
) ([]models.Appointment, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Appointment
	for _, id := range r.order {
		ap := r.appointments[id]
		if ap.ProviderID == providerID && ap.SlotDate == slotDate {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *MemoryLedger) ListBySubject(
	_ context.Context,
	subjectID string,
) ([]models.Appointment, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Appointment
	for i := len(r.order) - 1; i >= 0; i-- {
		ap := r.appointments[r.order[i]]
		if ap.SubjectID == subjectID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *MemoryLedger) ListOccupied(
	_ context.Context,
) ([]models.Appointment, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Appointment
	for _, id := range r.order {
		ap := r.appointments[id]
		if domain.Occupied(&ap) {
			out = append(out, ap)
		}
	}
	return out, nil
}
