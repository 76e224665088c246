package schedule

import (
	"fmt"
	"time"
)

// CalendarDate is a provider-local calendar day. It is comparable and
// used as a map key: two dates are equal iff year, month and day match.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate reads the wire form "2025-1-2" (zero padding optional).
func ParseDate(s string, loc *time.Location) (CalendarDate, error) {
	t, err := time.ParseInLocation("2006-1-2", s, loc)
	if err != nil {
		return CalendarDate{}, err
	}
	return DateOf(t), nil
}

// String renders the unpadded wire form used as a slot-date key.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%d-%d-%d", d.Year, int(d.Month), d.Day)
}

// At anchors a time of day on this date in the given location.
func (d CalendarDate) At(hour, minute int, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, minute, 0, 0, loc)
}

// SlotLabel identifies a slot within a calendar date, e.g. "10:00 AM".
type SlotLabel string

func LabelAt(t time.Time) SlotLabel {
	return SlotLabel(t.Format("03:04 PM"))
}

// Slot is an ephemeral bookable position, recomputed on demand by the
// window generator. It carries no booked/free state; that is looked up
// against the availability index.
type Slot struct {
	Date    CalendarDate
	Label   SlotLabel
	Instant time.Time
}

// DaySlots groups the generated slots of one calendar day. A day past
// closing time is still present, with an empty slot list.
type DaySlots struct {
	Date  CalendarDate
	Slots []Slot
}
