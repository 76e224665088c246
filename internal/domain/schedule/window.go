package schedule

import "time"

// GenerateWindow derives the candidate slots for the next `days`
// calendar days starting at ref's date. It is pure: ref is the only
// clock input, so identical inputs always produce identical windows.
//
// Day 0 starts at the first granularity boundary at or after ref,
// clamped up to the opening hour; later days start at the opening hour.
// The closing hour is exclusive: the last slot of a 10:00–21:00 day at
// 30 minutes is 20:30.
func GenerateWindow(hours WorkingHours, ref time.Time, days int) []DaySlots {
	if days < 1 || !hours.valid() {
		return nil
	}

	loc := ref.Location()
	step := time.Duration(hours.SlotMinutes) * time.Minute
	window := make([]DaySlots, 0, days)

	for i := 0; i < days; i++ {
		date := DateOf(ref.AddDate(0, 0, i))

		start := date.At(hours.OpenHour, 0, loc)
		if i == 0 {
			if next := nextBoundary(ref, hours.SlotMinutes); next.After(start) {
				start = next
			}
		}
		end := date.At(hours.CloseHour, 0, loc)

		day := DaySlots{Date: date, Slots: []Slot{}}
		for cur := start; cur.Before(end); cur = cur.Add(step) {
			day.Slots = append(day.Slots, Slot{
				Date:    date,
				Label:   LabelAt(cur),
				Instant: cur,
			})
		}
		window = append(window, day)
	}

	return window
}

// SlotInWindow reports whether (date, label) is a slot the generator
// currently produces for the given policy. Booking validates through
// this, so past slots and slots outside working hours are rejected.
func SlotInWindow(hours WorkingHours, ref time.Time, days int, date CalendarDate, label SlotLabel) bool {
	for _, day := range GenerateWindow(hours, ref, days) {
		if day.Date != date {
			continue
		}
		for _, slot := range day.Slots {
			if slot.Label == label {
				return true
			}
		}
		return false
	}
	return false
}

// nextBoundary rounds t up to the next slot boundary: with a 30-minute
// granularity, 20:45 becomes 21:00 and 20:15 becomes 20:30. An instant
// already on a boundary is kept as-is.
func nextBoundary(t time.Time, granularity int) time.Time {
	minutes := t.Hour()*60 + t.Minute()
	if t.Second() > 0 || t.Nanosecond() > 0 {
		minutes++
	}
	if rem := minutes % granularity; rem != 0 {
		minutes += granularity - rem
	}
	return DateOf(t).At(minutes/60, minutes%60, t.Location())
}
