// Package tracker remembers the fingerprint of the last image this process
// published, so the watch loop can tell a freshly copied image apart from its
// own output echoing back from the clipboard.
package tracker

import "go.klb.dev/picst/internal/sample"

// Decision is the outcome of Observe.
type Decision int

const (
	// Fresh means the candidate is external input and should be processed.
	Fresh Decision = iota
	// Echo means the candidate is the image this process last published.
	Echo
)

func (d Decision) String() string {
	switch d {
	case Fresh:
		return "fresh"
	case Echo:
		return "echo"
	default:
		return "unknown"
	}
}

// Tracker holds the last published fingerprint. It is owned by a single
// watch loop and is not safe for concurrent use.
type Tracker struct {
	last *sample.Fingerprint
}

// New returns a tracker with nothing recorded.
func New() *Tracker {
	return &Tracker{}
}

// Observe classifies candidate. It never mutates the tracker.
func (t *Tracker) Observe(candidate sample.Fingerprint) Decision {
	if t.last == nil || *t.last != candidate {
		return Fresh
	}
	return Echo
}

// Record stores fp as the last published output.
func (t *Tracker) Record(fp sample.Fingerprint) {
	t.last = &fp
}

// Last returns the recorded fingerprint and whether one exists.
func (t *Tracker) Last() (sample.Fingerprint, bool) {
	if t.last == nil {
		return sample.Fingerprint{}, false
	}
	return *t.last, true
}
