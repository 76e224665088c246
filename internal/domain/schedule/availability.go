package schedule

import "sync"

type slotKey struct {
	ProviderID uint
	Date       CalendarDate
}

// Index is the authoritative in-memory record of booked slot labels per
// (provider, date). Reads run concurrently; Mark and Release belong to
// the booking transactions, which already serialize themselves per key
// through SlotLocks.
//
// Invariant: a label is present here iff a non-cancelled appointment
// exists for that provider/date/label.
type Index struct {
	mu     sync.RWMutex
	booked map[slotKey]map[SlotLabel]struct{}
}

func NewIndex() *Index {
	return &Index{booked: make(map[slotKey]map[SlotLabel]struct{})}
}

// IsFree reports whether the label is absent from the booked set. A
// provider/date with no record at all means every slot is free.
func (ix *Index) IsFree(providerID uint, date CalendarDate, label SlotLabel) bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	_, taken := ix.booked[slotKey{providerID, date}][label]
	return !taken
}

func (ix *Index) BookedLabels(providerID uint, date CalendarDate) []SlotLabel {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	set := ix.booked[slotKey{providerID, date}]
	labels := make([]SlotLabel, 0, len(set))
	for label := range set {
		labels = append(labels, label)
	}
	return labels
}

func (ix *Index) Mark(providerID uint, date CalendarDate, label SlotLabel) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	key := slotKey{providerID, date}
	if ix.booked[key] == nil {
		ix.booked[key] = make(map[SlotLabel]struct{})
	}
	ix.booked[key][label] = struct{}{}
}

func (ix *Index) Release(providerID uint, date CalendarDate, label SlotLabel) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	key := slotKey{providerID, date}
	delete(ix.booked[key], label)
	if len(ix.booked[key]) == 0 {
		delete(ix.booked, key)
	}
}
