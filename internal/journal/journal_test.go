package journal_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-hub/internal/journal"
	"github.com/tuanvumaihuynh/inventory-hub/internal/model"
)

func TestRecord(t *testing.T) {
	j := journal.New(0)

	a := j.Record(model.ActionCreate, "p1", "Milk", "Added new product: Milk")

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "p1", a.ProductID)
	assert.Equal(t, "Milk", a.ProductName)
	assert.Equal(t, model.ActionCreate, a.Action)
	assert.False(t, a.Timestamp.IsZero())
	assert.Equal(t, 1, j.Len())
}

func TestCapacityEvictsOldestFirst(t *testing.T) {
	j := journal.New(journal.DefaultCapacity)

	for i := range 101 {
		j.Record(model.ActionUpdate, fmt.Sprintf("p%d", i), "item", fmt.Sprintf("change %d", i))
	}

	all := j.All()
	require.Len(t, all, 100)
	assert.Equal(t, "change 1", all[0].Description)
	assert.Equal(t, "change 100", all[99].Description)
	for i, a := range all {
		assert.Equal(t, fmt.Sprintf("change %d", i+1), a.Description)
	}
}

func TestRecentOrdersByTimestampDescending(t *testing.T) {
	j := journal.New(10)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	stamps := []time.Time{
		base.Add(2 * time.Second),
		base,
		base.Add(2 * time.Second),
		base.Add(time.Second),
	}
	i := 0
	j.SetClock(func() time.Time {
		ts := stamps[i]
		i++
		return ts
	})

	j.Record(model.ActionCreate, "a", "A", "first at +2s")
	j.Record(model.ActionCreate, "b", "B", "at +0s")
	j.Record(model.ActionCreate, "c", "C", "second at +2s")
	j.Record(model.ActionCreate, "d", "D", "at +1s")

	recent := j.Recent(3)
	require.Len(t, recent, 3)
	assert.Equal(t, "first at +2s", recent[0].Description)
	assert.Equal(t, "second at +2s", recent[1].Description)
	assert.Equal(t, "at +1s", recent[2].Description)

	assert.Len(t, j.Recent(0), 4)
	assert.Len(t, j.Recent(50), 4)
}

func TestConcurrentRecord(t *testing.T) {
	j := journal.New(50)

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			for range 100 {
				j.Record(model.ActionUpdate, "p", "P", "tick")
				_ = j.Recent(10)
			}
		})
	}
	wg.Wait()

	assert.Equal(t, 50, j.Len())
}
