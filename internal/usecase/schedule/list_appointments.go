package schedule

import (
	"context"

	domain "github.com/docpoint/clinic-scheduler/internal/domain/schedule"
	"github.com/docpoint/clinic-scheduler/internal/dto"
	"github.com/docpoint/clinic-scheduler/internal/models"
	"github.com/docpoint/clinic-scheduler/internal/timezone"
)

// ListByProviderDate is the reporting read path for one provider day.
type ListByProviderDate struct {
	providers domain.Providers
	ledger    domain.Ledger
}

func NewListByProviderDate(
	providers domain.Providers,
	ledger domain.Ledger,
) *ListByProviderDate {
	return &ListByProviderDate{providers: providers, ledger: ledger}
}

func (uc *ListByProviderDate) Execute(
	ctx context.Context,
	providerID uint,
	dateStr string,
) ([]dto.AppointmentListDTO, error) {

	prov, err := uc.providers.GetProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	// normalize to the stored wire form before querying
	date, err := domain.ParseDate(dateStr, timezone.Location(prov.Timezone))
	if err != nil {
		return nil, domain.ErrInvalidSlot
	}

	appointments, err := uc.ledger.ListByProviderDate(ctx, prov.ID, date.String())
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}

// ListBySubject answers "my appointments" for a booking party.
type ListBySubject struct {
	ledger domain.Ledger
}

func NewListBySubject(ledger domain.Ledger) *ListBySubject {
	return &ListBySubject{ledger: ledger}
}

func (uc *ListBySubject) Execute(
	ctx context.Context,
	subjectID string,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.ledger.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}

func toListDTOs(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:         ap.ID,
			ProviderID: ap.ProviderID,
			SubjectID:  ap.SubjectID,
			Date:       ap.SlotDate,
			Time:       ap.SlotLabel,
			Status:     ap.Status,
			CreatedAt:  ap.CreatedAt,
		})
	}
	return out
}
