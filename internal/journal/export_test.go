package journal

import "time"

// SetClock replaces the timestamp source.
func (j *Journal) SetClock(now func() time.Time) {
	j.now = now
}
