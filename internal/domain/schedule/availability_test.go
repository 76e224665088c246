package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIndex_FreeByDefault(t *testing.T) {
	ix := NewIndex()
	date := CalendarDate{Year: 2026, Month: time.March, Day: 10}

	assert.True(t, ix.IsFree(1, date, "10:00 AM"))
	assert.Empty(t, ix.BookedLabels(1, date))
}

func TestIndex_MarkRelease(t *testing.T) {
	ix := NewIndex()
	date := CalendarDate{Year: 2026, Month: time.March, Day: 10}
	other := CalendarDate{Year: 2026, Month: time.March, Day: 11}

	ix.Mark(1, date, "10:00 AM")
	ix.Mark(1, date, "10:30 AM")

	assert.False(t, ix.IsFree(1, date, "10:00 AM"))
	assert.ElementsMatch(t, []SlotLabel{"10:00 AM", "10:30 AM"}, ix.BookedLabels(1, date))

	// other dates and providers are unaffected
	assert.True(t, ix.IsFree(1, other, "10:00 AM"))
	assert.True(t, ix.IsFree(2, date, "10:00 AM"))

	ix.Release(1, date, "10:00 AM")
	assert.True(t, ix.IsFree(1, date, "10:00 AM"))
	assert.Equal(t, []SlotLabel{"10:30 AM"}, ix.BookedLabels(1, date))

	// releasing an absent label is a no-op
	ix.Release(1, date, "05:00 PM")
	assert.Equal(t, []SlotLabel{"10:30 AM"}, ix.BookedLabels(1, date))
}
