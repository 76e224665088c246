package schedule

import "sync"

// SlotLocks hands out one mutex per (provider, date), so booking
// transactions for the same day are totally ordered while unrelated
// providers and dates never contend.
type SlotLocks struct {
	mu    sync.Mutex
	locks map[slotKey]*sync.Mutex
}

func NewSlotLocks() *SlotLocks {
	return &SlotLocks{locks: make(map[slotKey]*sync.Mutex)}
}

// Acquire returns the exclusive lock for (providerID, date), creating
// it on first use. Entries are kept for the process lifetime; the key
// space is bounded by providers times dates with booking activity.
func (sl *SlotLocks) Acquire(providerID uint, date CalendarDate) *sync.Mutex {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	key := slotKey{providerID, date}
	m, ok := sl.locks[key]
	if !ok {
		m = &sync.Mutex{}
		sl.locks[key] = m
	}
	return m
}
