package app

import (
	"sync"
	"time"

	"github.com/bep/debounce"
)

// RangeDraft holds the local, uncommitted state of a range input. Dragging a
// slider updates only the draft; the shared criteria record sees the value
// when the user releases the handle, or after typed input has been idle for
// the quiet period. Commits read the draft at fire time, so a debounced
// commit racing a release can only repeat the same value.
type RangeDraft struct {
	mu        sync.Mutex
	value     Range
	commit    func(Range)
	debounced func(f func())
}

// NewRangeDraft creates a draft seeded with the current committed value.
// commit is invoked with the draft value on Release and after quiet idle
// time following Type.
func NewRangeDraft(initial Range, quiet time.Duration, commit func(Range)) *RangeDraft {
	if quiet <= 0 {
		quiet = 400 * time.Millisecond
	}
	if commit == nil {
		commit = func(Range) {}
	}
	return &RangeDraft{
		value:     initial,
		commit:    commit,
		debounced: debounce.New(quiet),
	}
}

// Set updates the draft without committing; a slider drag.
func (d *RangeDraft) Set(r Range) {
	d.mu.Lock()
	d.value = r
	d.mu.Unlock()
}

// Value returns the current draft state.
func (d *RangeDraft) Value() Range {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.value
}

// Release commits the draft immediately; a slider handle being let go.
func (d *RangeDraft) Release() {
	d.flush()
}

// Type updates the draft and schedules a commit once input goes quiet.
func (d *RangeDraft) Type(r Range) {
	d.Set(r)
	d.debounced(d.flush)
}

func (d *RangeDraft) flush() {
	d.mu.Lock()
	v := d.value
	d.mu.Unlock()
	d.commit(v)
}
