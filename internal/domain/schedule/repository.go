package schedule

import (
	"context"

	"github.com/docpoint/clinic-scheduler/internal/models"
)

// Ledger is the durable appointment record. Append-mostly: the only
// mutation after creation is a status transition, guarded by an
// optimistic version check. Appointments are never deleted.
type Ledger interface {
	Append(ctx context.Context, ap *models.Appointment) error

	Get(ctx context.Context, id string) (*models.Appointment, error)

	// Update persists a status transition. It fails when the stored
	// version no longer matches expectedVersion.
	Update(ctx context.Context, ap *models.Appointment, expectedVersion int) error

	ListByProviderDate(ctx context.Context, providerID uint, slotDate string) ([]models.Appointment, error)

	ListBySubject(ctx context.Context, subjectID string) ([]models.Appointment, error)

	// ListOccupied returns every non-cancelled appointment; used to
	// rebuild the availability index at startup.
	ListOccupied(ctx context.Context) ([]models.Appointment, error)
}

// Providers is the profile collaborator's lookup contract.
type Providers interface {
	GetProvider(ctx context.Context, id uint) (*models.Provider, error)
	ListProviders(ctx context.Context) ([]models.Provider, error)
}
