// SPDX-License-Identifier: MIT

package observe

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvbip/bip"
)

// EventKind distinguishes recorded callbacks.
type EventKind int

const (
	// Opened is a NodeOpened callback.
	Opened EventKind = iota
	// Closed is a NodeClosed callback.
	Closed
)

// Event is one recorded node callback. Fixed is a private copy.
// Bound is the node's bound; it is set on both events of a node when the
// solver reports bounds.
type Event struct {
	Kind   EventKind
	ID     int
	Parent int
	Fixed  []int8
	Reason bip.CloseReason
	Bound  int64
}

// Recorder stores the full event stream of one or more runs, plus the ids
// and values of every incumbent replacement.
type Recorder struct {
	events     []Event
	lastID     int
	lastBound  int64
	candidates *roaring.Bitmap
	values     []int64
	counts     map[bip.CloseReason]int
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		candidates: roaring.New(),
		counts:     make(map[bip.CloseReason]int),
	}
}

// NodeOpened implements bip.NodeListener.
func (r *Recorder) NodeOpened(id, parent int, fixed []int8) {
	r.events = append(r.events, Event{
		Kind:   Opened,
		ID:     id,
		Parent: parent,
		Fixed:  append([]int8(nil), fixed...),
	})
}

// NodeBounded implements bip.BoundObserver.
func (r *Recorder) NodeBounded(id int, _ []int8, bound, _ int64, _ bool) {
	r.lastID, r.lastBound = id, bound
	if n := len(r.events); n > 0 && r.events[n-1].ID == id {
		r.events[n-1].Bound = bound
	}
}

// NodeClosed implements bip.NodeListener.
func (r *Recorder) NodeClosed(id int, reason bip.CloseReason) {
	e := Event{Kind: Closed, ID: id, Reason: reason}
	if r.lastID == id {
		e.Bound = r.lastBound
	}
	r.events = append(r.events, e)
	r.counts[reason]++
	if reason == bip.ReasonNewCandidate {
		r.candidates.Add(uint32(id))
		r.values = append(r.values, e.Bound)
	}
}

// Events returns the recorded stream. The slice is owned by the Recorder.
func (r *Recorder) Events() []Event { return r.events }

// Candidates returns the ids of nodes closed as new candidates.
func (r *Recorder) Candidates() *roaring.Bitmap { return r.candidates.Clone() }

// CandidateValues returns incumbent values in the order they were found.
func (r *Recorder) CandidateValues() []int64 { return append([]int64(nil), r.values...) }

// Count returns how many nodes closed with reason.
func (r *Recorder) Count(reason bip.CloseReason) int { return r.counts[reason] }

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.events = r.events[:0]
	r.lastID, r.lastBound = 0, 0
	r.candidates.Clear()
	r.values = r.values[:0]
	clear(r.counts)
}

var (
	_ bip.NodeListener  = (*Recorder)(nil)
	_ bip.BoundObserver = (*Recorder)(nil)
)
