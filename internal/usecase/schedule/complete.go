package schedule

import (
	"context"

	"github.com/docpoint/clinic-scheduler/internal/audit"
	domain "github.com/docpoint/clinic-scheduler/internal/domain/schedule"
	"github.com/docpoint/clinic-scheduler/internal/models"
	"github.com/docpoint/clinic-scheduler/internal/timezone"
)

// CompleteAppointment marks a confirmed appointment as completed. The
// slot stays occupied: only cancellation releases a label from the
// availability index.
type CompleteAppointment struct {
	providers domain.Providers
	ledger    domain.Ledger
	locks     *domain.SlotLocks
	audit     *audit.Dispatcher
	clock     domain.Clock
}

func NewCompleteAppointment(
	providers domain.Providers,
	ledger domain.Ledger,
	locks *domain.SlotLocks,
	auditDispatcher *audit.Dispatcher,
	clock domain.Clock,
) *CompleteAppointment {
	return &CompleteAppointment{
		providers: providers,
		ledger:    ledger,
		locks:     locks,
		audit:     auditDispatcher,
		clock:     clock,
	}
}

func (uc *CompleteAppointment) Execute(
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

	ap, err = uc.ledger.Get(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	prev := ap.Version
	now := uc.clock().In(loc)
	if err := domain.Complete(ap, now); err != nil {
		return nil, err
	}

	if err := uc.ledger.Update(ctx, ap, prev); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: ap.ProviderID,
		SubjectID:  ap.SubjectID,
		Action:     "appointment_completed",
		Entity:     "appointment",
		EntityID:   ap.ID,
	})

	return ap, nil
}
