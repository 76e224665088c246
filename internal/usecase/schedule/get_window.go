package schedule

import (
	"context"
	"encoding/json"

	"github.com/docpoint/clinic-scheduler/internal/cache"
	domain "github.com/docpoint/clinic-scheduler/internal/domain/schedule"
	"github.com/docpoint/clinic-scheduler/internal/dto"
	"github.com/docpoint/clinic-scheduler/internal/timezone"
)

const maxWindowDays = 31

// GetWindow composes the pure window generator with the availability
// index to render the free/busy view a booking client shows.
type GetWindow struct {
	providers   domain.Providers
	index       *domain.Index
	cache       *cache.WindowCache
	clock       domain.Clock
	defaultDays int
}

func NewGetWindow(
	providers domain.Providers,
	index *domain.Index,
	windowCache *cache.WindowCache,
	clock domain.Clock,
	defaultDays int,
) *GetWindow {
	return &GetWindow{
		providers:   providers,
		index:       index,
		cache:       windowCache,
		clock:       clock,
		defaultDays: defaultDays,
	}
}

func (uc *GetWindow) Execute(
	ctx context.Context,
	providerID uint,
	days int,
) ([]dto.WindowDayDTO, error) {

	prov, err := uc.providers.GetProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	if days < 1 {
		days = uc.defaultDays
	}
	if days > maxWindowDays {
		days = maxWindowDays
	}

	if payload, ok := uc.cache.Get(ctx, prov.ID, days); ok {
		var cached []dto.WindowDayDTO
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
	}

	now := uc.clock().In(timezone.Location(prov.Timezone))
	window := domain.GenerateWindow(domain.HoursOf(prov), now, days)

	out := make([]dto.WindowDayDTO, 0, len(window))
	for _, day := range window {
		d := dto.WindowDayDTO{
			Date:  day.Date.String(),
			Slots: make([]dto.WindowSlotDTO, 0, len(day.Slots)),
		}
		for _, slot := range day.Slots {
			d.Slots = append(d.Slots, dto.WindowSlotDTO{
				Label:     string(slot.Label),
				Instant:   slot.Instant,
				Available: uc.index.IsFree(prov.ID, day.Date, slot.Label),
			})
		}
		out = append(out, d)
	}

	if payload, err := json.Marshal(out); err == nil {
		uc.cache.Store(ctx, prov.ID, days, payload)
	}

	return out, nil
}
