package schedule

import "github.com/docpoint/clinic-scheduler/internal/models"

// WorkingHours is a provider's slot policy: opening hour, closing hour
// and the fixed granularity between consecutive slot starts.
type WorkingHours struct {
	OpenHour    int
	CloseHour   int
	SlotMinutes int
}

func (wh WorkingHours) valid() bool {
	return wh.SlotMinutes > 0 &&
		wh.OpenHour >= 0 &&
		wh.CloseHour <= 24 &&
		wh.OpenHour < wh.CloseHour
}

// HoursOf reads the policy off a provider record. The policy is owned
// by the profile collaborator and treated as immutable here.
func HoursOf(p *models.Provider) WorkingHours {
	return WorkingHours{
		OpenHour:    p.OpenHour,
		CloseHour:   p.CloseHour,
		SlotMinutes: p.SlotMinutes,
	}
}
