package schedule

import (
	"context"
	"time"

	domain "github.com/docpoint/clinic-scheduler/internal/domain/schedule"
)

// RebuildIndex reloads the availability index from the ledger. Run once
// at startup, before any booking traffic: afterwards the booking
// transactions are the index's only writers, which keeps the index and
// the ledger's non-cancelled appointments in lockstep.
func RebuildIndex(
	ctx context.Context,
	ledger domain.Ledger,
	index *domain.Index,
) error {

	appointments, err := ledger.ListOccupied(ctx)
	if err != nil {
		return err
	}

	for _, ap := range appointments {
		// only the (year, month, day) triple matters for the key
		date, err := domain.ParseDate(ap.SlotDate, time.UTC)
		if err != nil {
			continue
		}
		index.Mark(ap.ProviderID, date, domain.SlotLabel(ap.SlotLabel))
	}

	return nil
}
