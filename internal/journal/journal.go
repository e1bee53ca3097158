// Package journal keeps a bounded in-memory feed of recent product
// mutations. It is an activity log for dashboards, never replayed into
// catalog state.
package journal

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tuanvumaihuynh/inventory-hub/internal/model"
)

// DefaultCapacity is the number of entries kept before the oldest is evicted.
const DefaultCapacity = 100

type Journal struct {
	mu       sync.RWMutex
	capacity int
	entries  []model.Activity
	now      func() time.Time
}

// New returns a journal holding at most capacity entries. A non-positive
// capacity falls back to DefaultCapacity.
func New(capacity int) *Journal {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Journal{
		capacity: capacity,
		entries:  make([]model.Activity, 0, capacity+1),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Record appends a new activity and evicts the oldest entries past capacity.
func (j *Journal) Record(action model.Action, productID, productName, description string) model.Activity {
	activity := model.Activity{
		ID:          uuid.NewString(),
		ProductID:   productID,
		ProductName: productName,
		Action:      action,
		Description: description,
		Timestamp:   j.now(),
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.entries = append(j.entries, activity)
	if over := len(j.entries) - j.capacity; over > 0 {
		// shift in place so the append above never reallocates
		n := copy(j.entries, j.entries[over:])
		clear(j.entries[n:])
		j.entries = j.entries[:n]
	}

	return activity
}

// Recent returns up to n entries, newest timestamp first. Entries sharing a
// timestamp keep their insertion order. n <= 0 returns everything.
func (j *Journal) Recent(n int) []model.Activity {
	j.mu.RLock()
	out := slices.Clone(j.entries)
	j.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b model.Activity) int {
		return cmp.Compare(b.Timestamp.UnixNano(), a.Timestamp.UnixNano())
	})

	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// All returns every entry in insertion order.
func (j *Journal) All() []model.Activity {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return slices.Clone(j.entries)
}

func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.entries)
}
