package schedule

import (
	"context"

	"github.com/docpoint/clinic-scheduler/internal/audit"
	"github.com/docpoint/clinic-scheduler/internal/cache"
	domain "github.com/docpoint/clinic-scheduler/internal/domain/schedule"
	"github.com/docpoint/clinic-scheduler/internal/models"
	"github.com/docpoint/clinic-scheduler/internal/timezone"
)

// CancelAppointment is the check-and-release transaction: under the
// same per (provider, date) lock as booking, it transitions the
// appointment to cancelled and frees the slot. The release happens only
// after the ledger update commits.
type CancelAppointment struct {
	providers domain.Providers
	ledger    domain.Ledger
	index     *domain.Index
	locks     *domain.SlotLocks
	audit     *audit.Dispatcher
	cache     *cache.WindowCache
	clock     domain.Clock
}

func NewCancelAppointment(
	providers domain.Providers,
	ledger domain.Ledger,
	index *domain.Index,
	locks *domain.SlotLocks,
	auditDispatcher *audit.Dispatcher,
	windowCache *cache.WindowCache,
	clock domain.Clock,
) *CancelAppointment {
	return &CancelAppointment{
		providers: providers,
		ledger:    ledger,
		index:     index,
		locks:     locks,
		audit:     auditDispatcher,
		cache:     windowCache,
		clock:     clock,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.ledger.Get(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	prov, err := uc.providers.GetProvider(ctx, ap.ProviderID)
	if err != nil {
		return nil, err
	}
	loc := timezone.Location(prov.Timezone)

	date, err := domain.ParseDate(ap.SlotDate, loc)
	if err != nil {
		return nil, err
	}

	mu := uc.locks.Acquire(ap.ProviderID, date)
	mu.Lock()
	defer mu.Unlock()

	// re-read under the lock; the first read may have raced a writer
	ap, err = uc.ledger.Get(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	prev := ap.Version
	now := uc.clock().In(loc)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.ledger.Update(ctx, ap, prev); err != nil {
		return nil, err
	}
	uc.index.Release(ap.ProviderID, date, domain.SlotLabel(ap.SlotLabel))

	uc.audit.Dispatch(audit.Event{
		ProviderID: ap.ProviderID,
		SubjectID:  ap.SubjectID,
		Action:     "appointment_cancelled",
		Entity:     "appointment",
		EntityID:   ap.ID,
	})
	uc.cache.Invalidate(ctx, ap.ProviderID)

	return ap, nil
}
