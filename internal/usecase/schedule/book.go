package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/docpoint/clinic-scheduler/internal/audit"
	"github.com/docpoint/clinic-scheduler/internal/cache"
	domain "github.com/docpoint/clinic-scheduler/internal/domain/schedule"
	"github.com/docpoint/clinic-scheduler/internal/models"
	"github.com/docpoint/clinic-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookSlotInput struct {
	ProviderID uint
	SubjectID  string
	Date       string
	Label      string
}

// ======================================================
// USE CASE
// ======================================================

// BookSlot is the check-and-reserve transaction. Under the per
// (provider, date) lock it verifies the slot is free, appends the
// confirmed appointment to the ledger and marks the availability index.
// A ledger failure leaves the index untouched, so there is never a
// marked slot without an appointment or the reverse.
type BookSlot struct {
	providers domain.Providers
	ledger    domain.Ledger
	index     *domain.Index
	locks     *domain.SlotLocks
	audit     *audit.Dispatcher
	cache     *cache.WindowCache
	clock     domain.Clock
	horizon   int
}

func NewBookSlot(
	providers domain.Providers,
	ledger domain.Ledger,
	index *domain.Index,
	locks *domain.SlotLocks,
	auditDispatcher *audit.Dispatcher,
	windowCache *cache.WindowCache,
	clock domain.Clock,
	horizonDays int,
) *BookSlot {
	return &BookSlot{
		providers: providers,
		ledger:    ledger,
		index:     index,
		locks:     locks,
		audit:     auditDispatcher,
		cache:     windowCache,
		clock:     clock,
		horizon:   horizonDays,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookSlot) Execute(
	ctx context.Context,
	in BookSlotInput,
) (*models.Appointment, error) {

	prov, err := uc.providers.GetProvider(ctx, in.ProviderID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(prov.Timezone)
	now := uc.clock().In(loc)

	date, err := domain.ParseDate(in.Date, loc)
	if err != nil {
		return nil, domain.ErrInvalidSlot
	}
	label := domain.SlotLabel(in.Label)

	// only slots the generator currently produces may be booked
	hours := domain.HoursOf(prov)
	if !domain.SlotInWindow(hours, now, uc.horizon, date, label) {
		return nil, domain.ErrInvalidSlot
	}

	mu := uc.locks.Acquire(prov.ID, date)
	mu.Lock()
	defer mu.Unlock()

	if !uc.index.IsFree(prov.ID, date, label) {
		return nil, domain.ErrSlotUnavailable
	}

	ap := &models.Appointment{
		ID:         uuid.NewString(),
		ProviderID: prov.ID,
		SubjectID:  in.SubjectID,
		SlotDate:   date.String(),
		SlotLabel:  string(label),
		Status:     string(domain.InitialStatus()),
		Version:    1,
	}

	if err := uc.ledger.Append(ctx, ap); err != nil {
		return nil, err
	}
	uc.index.Mark(prov.ID, date, label)

	uc.audit.Dispatch(audit.Event{
		ProviderID: prov.ID,
		SubjectID:  in.SubjectID,
		Action:     "appointment_booked",
		Entity:     "appointment",
		EntityID:   ap.ID,
		Metadata:   map[string]string{"date": ap.SlotDate, "time": ap.SlotLabel},
	})
	uc.cache.Invalidate(ctx, prov.ID)

	return ap, nil
}
